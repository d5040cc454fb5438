// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func toString(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read file %s: %w", path, err)
	}

	// Devicetree files are NUL terminated.
	return strings.TrimSpace(strings.TrimRight(string(contents), "\x00")), nil
}

func toInt(path string) (int, error) {
	fileString, err := toString(path)
	if err != nil {
		return 0, err
	}

	num, err := strconv.Atoi(fileString)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s file to int: %w", fileString, err)
	}

	return num, nil
}

func toBool(path string) (bool, error) {
	num, err := toInt(path)
	if err != nil {
		return false, err
	}

	return num == 1, nil
}
