// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pideck/pideck/internal/api/info"
)

func NewWatchCommand(newClient func() (*Client, error)) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Continuously print system snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				var snap info.Snapshot
				if err := client.Get(cmd.Context(), "/api/v1/snapshot", &snap); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				} else {
					printSnapshot(cmd, snap)
					fmt.Fprintln(cmd.OutOrStdout())
				}
				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "Time between snapshots.")
	return cmd
}
