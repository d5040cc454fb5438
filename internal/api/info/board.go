// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package info

// Board holds the board identity as decoded from the firmware revision
// code, plus the devicetree model and serial number.
type Board struct {
	Model               string `json:"model"`
	Serial              string `json:"serial"`
	RevisionCode        string `json:"revisionCode"`
	Scheme              string `json:"scheme"`
	ModelName           string `json:"modelName"`
	Revision            string `json:"revision"`
	RAMMB               int    `json:"ramMB"`
	Manufacturer        string `json:"manufacturer"`
	Processor           string `json:"processor"`
	OvervoltageAllowed  bool   `json:"overvoltageAllowed"`
	OTPProgramProtected bool   `json:"otpProgramProtected"`
	OTPReadProtected    bool   `json:"otpReadProtected"`
	DMI                 *DMI   `json:"dmi,omitempty"`
}

// DMI is the SMBIOS fallback identity for hosts without a devicetree.
type DMI struct {
	Manufacturer string `json:"manufacturer"`
	ProductName  string `json:"productName"`
	Version      string `json:"version"`
	SerialNumber string `json:"serialNumber"`
}
