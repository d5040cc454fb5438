// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

// Package revision decodes Raspberry Pi hardware revision codes into a
// structured board identity. Decoding is a pure function over the raw
// code: the same input always yields the same BoardInfo, unmapped
// subfields resolve to the Unknown sentinel, and the only failure mode
// is a raw value that is not parseable at all.
package revision

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unknown is the sentinel placed in any string field whose table index
// has no mapping. RAMMB uses 0 as its unknown value.
const Unknown = "unknown"

// ErrMalformedCode is returned when the raw revision value is not a
// parseable hexadecimal token. It is the decoder's only error.
var ErrMalformedCode = errors.New("malformed revision code")

// Scheme selects which encoding applies to a raw revision value.
type Scheme int

const (
	// SchemeOld identifies pre-2014 boards whose revision is an opaque
	// code looked up directly in a table.
	SchemeOld Scheme = iota
	// SchemeNew identifies the bitfield encoding introduced with the
	// Raspberry Pi 2.
	SchemeNew
)

func (s Scheme) String() string {
	if s == SchemeNew {
		return "new"
	}
	return "old"
}

// BoardInfo is the decoded board identity record.
type BoardInfo struct {
	Scheme              Scheme
	Model               string
	Revision            string
	RAMMB               int
	Manufacturer        string
	Processor           string
	OvervoltageAllowed  bool
	OTPProgramProtected bool
	OTPReadProtected    bool
}

// Bit layout of the new-scheme encoding, LSB = bit 0.
const (
	pcbRevisionMask   = 0xF
	modelShift        = 4
	modelMask         = 0xFF
	processorShift    = 12
	processorMask     = 0xF
	manufacturerShift = 16
	manufacturerMask  = 0xF
	memoryShift       = 20
	memoryMask        = 0x7
	newSchemeFlag     = 1 << 23
	otpReadBit        = 1 << 29
	otpProgramBit     = 1 << 30
	overvoltageBit    = 1 << 31

	// Pre-2014 boards set bit 24 when the warranty had been voided;
	// it is not part of the table key.
	oldWarrantyBit = 1 << 24
)

// Decode parses the raw Revision token from /proc/cpuinfo and decodes
// it. The token is a hexadecimal string, optionally 0x-prefixed.
func Decode(raw string) (BoardInfo, error) {
	token := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if token == "" {
		return BoardInfo{}, fmt.Errorf("%w: empty input", ErrMalformedCode)
	}
	code, err := strconv.ParseUint(token, 16, 32)
	if err != nil {
		return BoardInfo{}, fmt.Errorf("%w: %q", ErrMalformedCode, raw)
	}
	return DecodeCode(uint32(code)), nil
}

// DecodeCode decodes an already-parsed 32-bit revision code. It is
// total: every input yields a BoardInfo, with Unknown sentinels for
// unmapped values.
func DecodeCode(code uint32) BoardInfo {
	if code&newSchemeFlag == 0 {
		return decodeOld(code)
	}
	return decodeNew(code)
}

func decodeNew(code uint32) BoardInfo {
	return BoardInfo{
		Scheme:              SchemeNew,
		Model:               modelName(code >> modelShift & modelMask),
		Revision:            fmt.Sprintf("1.%d", code&pcbRevisionMask),
		RAMMB:               memorySize(code >> memoryShift & memoryMask),
		Manufacturer:        tableEntry(manufacturers, code>>manufacturerShift&manufacturerMask),
		Processor:           tableEntry(processors, code>>processorShift&processorMask),
		OvervoltageAllowed:  code&overvoltageBit != 0,
		OTPProgramProtected: code&otpProgramBit != 0,
		OTPReadProtected:    code&otpReadBit != 0,
	}
}

func decodeOld(code uint32) BoardInfo {
	board, ok := legacyBoards[code&^oldWarrantyBit]
	if !ok {
		// Unknown legacy boards are rare enough that partial info
		// beats an error: return a fully sentineled record.
		return BoardInfo{
			Scheme:       SchemeOld,
			Model:        Unknown,
			Revision:     Unknown,
			Manufacturer: Unknown,
			Processor:    Unknown,
		}
	}
	return BoardInfo{
		Scheme:       SchemeOld,
		Model:        board.model,
		Revision:     board.revision,
		RAMMB:        board.ramMB,
		Manufacturer: board.manufacturer,
		Processor:    board.processor,
	}
}

func modelName(index uint32) string {
	if name, ok := models[index]; ok {
		return name
	}
	return Unknown
}

func memorySize(index uint32) int {
	if int(index) < len(memorySizesMB) {
		return memorySizesMB[index]
	}
	return 0
}

func tableEntry(table []string, index uint32) string {
	if int(index) < len(table) {
		return table[index]
	}
	return Unknown
}
