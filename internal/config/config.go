// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the daemon configuration from an optional YAML
// file. Flags override file values, file values override defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can use the usual
// "60s"/"5m" notation.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds the daemon settings.
type Config struct {
	// Address is the HTTP listen address, e.g. ":8443".
	Address string `yaml:"address"`
	// Title is shown in the dashboard page header.
	Title string `yaml:"title"`
	// SnapshotTTL bounds how long a cached snapshot is served before
	// the collectors run again.
	SnapshotTTL Duration `yaml:"snapshotTTL"`
	// WifiInterface is the wireless interface passed to nmcli. Empty
	// disables Wi-Fi scanning.
	WifiInterface string `yaml:"wifiInterface"`
	// ExcludeInterfaces lists interface name prefixes skipped by the
	// network collector, in addition to loopback devices.
	ExcludeInterfaces []string `yaml:"excludeInterfaces"`
	// AllowPowerControl enables the reboot and shutdown endpoints.
	AllowPowerControl bool `yaml:"allowPowerControl"`
	// TopProcesses caps the process table length, 0 means unlimited.
	TopProcesses int `yaml:"topProcesses"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Address:           ":8443",
		Title:             "pideck",
		SnapshotTTL:       Duration(60 * time.Second),
		WifiInterface:     "wlan0",
		ExcludeInterfaces: []string{"tun", "docker0", "veth"},
		TopProcesses:      50,
	}
}

// Load reads the YAML file at path on top of the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("config: address must not be empty")
	}
	if c.SnapshotTTL < 0 {
		return fmt.Errorf("config: snapshotTTL must not be negative")
	}
	if c.TopProcesses < 0 {
		return fmt.Errorf("config: topProcesses must not be negative")
	}
	return nil
}
