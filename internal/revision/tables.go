// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package revision

// Constant tables transcribed from the official Raspberry Pi revision
// code documentation:
// https://www.raspberrypi.com/documentation/computers/raspberry-pi.html#raspberry-pi-revision-codes
// New board releases are additions to these tables, never logic
// changes.

// models maps the new-scheme model field (bits 4-11) to a model name.
// Gaps in the index range are unreleased or internal-only values.
var models = map[uint32]string{
	0x00: "Model A",
	0x01: "Model B",
	0x02: "Model A+",
	0x03: "Model B+",
	0x04: "2 Model B",
	0x05: "Alpha",
	0x06: "Compute Module 1",
	0x08: "3 Model B",
	0x09: "Zero",
	0x0A: "Compute Module 3",
	0x0C: "Zero W",
	0x0D: "3 Model B+",
	0x0E: "3 Model A+",
	0x10: "Compute Module 3+",
	0x11: "4 Model B",
	0x12: "Zero 2 W",
	0x13: "400",
	0x14: "Compute Module 4",
	0x15: "Compute Module 4S",
	0x17: "5",
	0x18: "Compute Module 5",
	0x19: "Compute Module 5 Lite",
}

// processors is indexed by the new-scheme processor field (bits 12-15).
var processors = []string{
	"BCM2835",
	"BCM2836",
	"BCM2837",
	"BCM2711",
	"BCM2712",
}

// manufacturers is indexed by the new-scheme manufacturer field
// (bits 16-19). Index 4 is a second Embest allocation.
var manufacturers = []string{
	"Sony UK",
	"Egoman",
	"Embest",
	"Sony Japan",
	"Embest",
	"Stadium",
}

// memorySizesMB is indexed by the new-scheme memory field (bits 20-22).
var memorySizesMB = []int{
	256,
	512,
	1024,
	2048,
	4096,
	8192,
	16384,
}

type legacyBoard struct {
	model        string
	revision     string
	ramMB        int
	processor    string
	manufacturer string
}

// legacyBoards maps pre-2014 opaque revision codes to their board
// identity. The old warranty bit is masked off before lookup.
var legacyBoards = map[uint32]legacyBoard{
	0x0002: {"Model B", "1.0", 256, "BCM2835", "Egoman"},
	0x0003: {"Model B", "1.0", 256, "BCM2835", "Egoman"},
	0x0004: {"Model B", "2.0", 256, "BCM2835", "Sony UK"},
	0x0005: {"Model B", "2.0", 256, "BCM2835", "Qisda"},
	0x0006: {"Model B", "2.0", 256, "BCM2835", "Egoman"},
	0x0007: {"Model A", "2.0", 256, "BCM2835", "Egoman"},
	0x0008: {"Model A", "2.0", 256, "BCM2835", "Sony UK"},
	0x0009: {"Model A", "2.0", 256, "BCM2835", "Qisda"},
	0x000D: {"Model B", "2.0", 512, "BCM2835", "Egoman"},
	0x000E: {"Model B", "2.0", 512, "BCM2835", "Sony UK"},
	0x000F: {"Model B", "2.0", 512, "BCM2835", "Egoman"},
	0x0010: {"Model B+", "1.2", 512, "BCM2835", "Sony UK"},
	0x0011: {"Compute Module 1", "1.0", 512, "BCM2835", "Sony UK"},
	0x0012: {"Model A+", "1.1", 256, "BCM2835", "Sony UK"},
	0x0013: {"Model B+", "1.2", 512, "BCM2835", "Embest"},
	0x0014: {"Compute Module 1", "1.0", 512, "BCM2835", "Embest"},
	0x0015: {"Model A+", "1.1", 512, "BCM2835", "Embest"},
}
