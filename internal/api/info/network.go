// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package info

// NetworkInterface represents one host network interface, including all
// of its IP addresses and its carrier status.
type NetworkInterface struct {
	Name            string   `json:"name"`
	MACAddress      string   `json:"macAddress"`
	IPAddresses     []string `json:"ipAddresses"`
	CarrierStatus   string   `json:"carrierStatus"`
	Speed           string   `json:"speed,omitempty"`
	Driver          string   `json:"driver,omitempty"`
	DriverVersion   string   `json:"driverVersion,omitempty"`
	FirmwareVersion string   `json:"firmwareVersion,omitempty"`
}
