// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"net"
	"strings"

	"github.com/pideck/pideck/internal/api/info"
)

// NIC abstracts the interface walk for testing.
type NIC interface {
	Interfaces() ([]net.Interface, error)
	Addrs(iface *net.Interface) ([]net.Addr, error)
}

type netNIC struct{}

func NewNIC() NIC {
	return &netNIC{}
}

func (n *netNIC) Interfaces() ([]net.Interface, error) {
	return net.Interfaces()
}

func (n *netNIC) Addrs(iface *net.Interface) ([]net.Addr, error) {
	return iface.Addrs()
}

// LinkData provides the per-device link attributes that are not part
// of the stdlib interface walk.
type LinkData interface {
	Speed(device string) string
	DriverInfo(device string) (driver, version, firmware string)
}

type noopLinkData struct{}

func (noopLinkData) Speed(string) string { return "" }

func (noopLinkData) DriverInfo(string) (string, string, string) { return "", "", "" }

// NetworkDataCollector walks the host interfaces and enriches them
// with link data.
type NetworkDataCollector struct {
	nic     NIC
	link    LinkData
	exclude []string
}

func NewNetworkDataCollector(nic NIC, link LinkData, exclude []string) NetworkDataCollector {
	return NetworkDataCollector{nic: nic, link: link, exclude: exclude}
}

// CollectNetworkData returns all physical interfaces with their IPs
// and carrier status. Down interfaces are included; loopback, excluded
// prefixes and MAC-less virtual devices are not.
func (c NetworkDataCollector) CollectNetworkData() ([]info.NetworkInterface, error) {
	interfaces, err := c.nic.Interfaces()
	if err != nil {
		return nil, err
	}

	networkInterfaces := make([]info.NetworkInterface, 0, len(interfaces))
	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback != 0 || c.excluded(iface.Name) {
			continue
		}
		if len(iface.HardwareAddr) == 0 {
			continue
		}

		status := "down"
		if iface.Flags&net.FlagRunning != 0 {
			status = "up"
		}

		driver, version, firmware := c.link.DriverInfo(iface.Name)
		networkInterface := info.NetworkInterface{
			Name:            iface.Name,
			MACAddress:      iface.HardwareAddr.String(),
			IPAddresses:     []string{},
			CarrierStatus:   status,
			Speed:           c.link.Speed(iface.Name),
			Driver:          driver,
			DriverVersion:   version,
			FirmwareVersion: firmware,
		}

		addrs, err := c.nic.Addrs(&iface)
		if err != nil {
			return nil, err
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil || ip.IsLoopback() {
				continue
			}
			networkInterface.IPAddresses = append(networkInterface.IPAddresses, ip.String())
		}

		networkInterfaces = append(networkInterfaces, networkInterface)
	}
	return networkInterfaces, nil
}

func (c NetworkDataCollector) excluded(name string) bool {
	for _, prefix := range c.exclude {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Network collects the host's network interfaces.
func (c *Collector) Network() ([]info.NetworkInterface, error) {
	link, closeLink := newLinkData(c.log)
	defer closeLink()
	return NewNetworkDataCollector(NewNIC(), link, c.cfg.ExcludeInterfaces).CollectNetworkData()
}
