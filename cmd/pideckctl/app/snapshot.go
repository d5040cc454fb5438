// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pideck/pideck/internal/api/info"
)

func NewSnapshotCommand(newClient func() (*Client, error)) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Show a full system snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			var snap info.Snapshot
			if err := client.Get(cmd.Context(), "/api/v1/snapshot", &snap); err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, snap)
			}
			printSnapshot(cmd, snap)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response.")
	return cmd
}

func printJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func printSnapshot(cmd *cobra.Command, snap info.Snapshot) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s, up %s)\n", snap.Host.Hostname, snap.Host.OSName,
		(time.Duration(snap.Host.UptimeSeconds) * time.Second).String())
	if snap.Board.ModelName != "" {
		fmt.Fprintf(out, "Raspberry Pi %s rev %s, %d MB RAM, %s\n",
			snap.Board.ModelName, snap.Board.Revision, snap.Board.RAMMB, snap.Board.Manufacturer)
	} else if snap.Board.Model != "" {
		fmt.Fprintln(out, snap.Board.Model)
	}

	cpu := snap.CPU
	fmt.Fprintf(out, "CPU:    %.1f%% load %.2f/%.2f/%.2f", cpu.UsagePercent, cpu.Load1, cpu.Load5, cpu.Load15)
	if cpu.FrequencyMHz.Current > 0 {
		fmt.Fprintf(out, " @ %.0f MHz", cpu.FrequencyMHz.Current)
	}
	if cpu.TemperatureC > 0 {
		fmt.Fprintf(out, ", %.1f°C", cpu.TemperatureC)
	}
	fmt.Fprintln(out)

	mem := snap.Memory
	fmt.Fprintf(out, "Memory: %s / %s (%.1f%%)\n", formatBytes(mem.UsedBytes), formatBytes(mem.TotalBytes), mem.UsedPercent)

	for _, disk := range snap.Disks {
		fmt.Fprintf(out, "Disk:   %-20s %s / %s (%.1f%%)\n",
			disk.Mountpoint, formatBytes(disk.UsedBytes), formatBytes(disk.TotalBytes), disk.UsedPercent)
	}
	for _, iface := range snap.Interfaces {
		fmt.Fprintf(out, "Net:    %-8s %-4s %v\n", iface.Name, iface.CarrierStatus, iface.IPAddresses)
	}
	if wifi := snap.Wifi; wifi != nil {
		for _, network := range wifi.Networks {
			marker := " "
			if network.InUse {
				marker = "*"
			}
			fmt.Fprintf(out, "Wifi:  %s %-24s ch %-3d %3d%% %s\n",
				marker, network.SSID, network.Channel, network.Signal, network.Security)
		}
	}
	for _, collectErr := range snap.Errors {
		fmt.Fprintf(out, "Error:  %s\n", collectErr)
	}
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1fG", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.0fM", float64(b)/(1<<20))
	default:
		return fmt.Sprintf("%dB", b)
	}
}
