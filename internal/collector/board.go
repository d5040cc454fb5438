// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pideck/pideck/internal/api/info"
	"github.com/pideck/pideck/internal/revision"
)

// cpuInfoFields are the board-identity lines of /proc/cpuinfo. On
// Raspberry Pi kernels they appear once at the end of the file.
type cpuInfoFields struct {
	revision string
	serial   string
	hardware string
	model    string
}

func parseCPUInfo(r io.Reader) (cpuInfoFields, error) {
	var fields cpuInfoFields
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Revision":
			fields.revision = value
		case "Serial":
			fields.serial = value
		case "Hardware":
			fields.hardware = value
		case "Model":
			fields.model = value
		}
	}
	if err := scanner.Err(); err != nil {
		return cpuInfoFields{}, fmt.Errorf("reading cpuinfo: %w", err)
	}
	return fields, nil
}

// buildBoard combines the devicetree model with the decoded revision
// code. A malformed revision code is the one reportable failure; the
// partially filled Board is still returned so the caller can render a
// degraded identity.
func buildBoard(fields cpuInfoFields, devicetreeModel string) (info.Board, error) {
	board := info.Board{
		Model:        devicetreeModel,
		Serial:       fields.serial,
		RevisionCode: fields.revision,
	}
	if board.Model == "" {
		board.Model = fields.model
	}

	decoded, err := revision.Decode(fields.revision)
	if err != nil {
		return board, fmt.Errorf("decoding revision code: %w", err)
	}

	board.Scheme = decoded.Scheme.String()
	board.ModelName = decoded.Model
	board.Revision = decoded.Revision
	board.RAMMB = decoded.RAMMB
	board.Manufacturer = decoded.Manufacturer
	board.Processor = decoded.Processor
	board.OvervoltageAllowed = decoded.OvervoltageAllowed
	board.OTPProgramProtected = decoded.OTPProgramProtected
	board.OTPReadProtected = decoded.OTPReadProtected
	return board, nil
}
