// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pideck/pideck/internal/api/info"
)

func NewBoardCommand(newClient func() (*Client, error)) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the decoded board identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			var board info.Board
			if err := client.Get(cmd.Context(), "/api/v1/board", &board); err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, board)
			}
			printBoard(cmd, board)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response.")
	return cmd
}

func printBoard(cmd *cobra.Command, board info.Board) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Model:         %s\n", board.Model)
	if board.ModelName != "" {
		fmt.Fprintf(out, "Decoded:       Raspberry Pi %s rev %s, %d MB RAM\n", board.ModelName, board.Revision, board.RAMMB)
		fmt.Fprintf(out, "Processor:     %s\n", board.Processor)
		fmt.Fprintf(out, "Manufacturer:  %s\n", board.Manufacturer)
	}
	fmt.Fprintf(out, "Revision code: %s (%s scheme)\n", board.RevisionCode, board.Scheme)
	fmt.Fprintf(out, "Serial:        %s\n", board.Serial)
	var flags []string
	if board.OvervoltageAllowed {
		flags = append(flags, "overvoltage allowed")
	}
	if board.OTPProgramProtected {
		flags = append(flags, "OTP programming protected")
	}
	if board.OTPReadProtected {
		flags = append(flags, "OTP reading protected")
	}
	if len(flags) > 0 {
		fmt.Fprintf(out, "Flags:         %s\n", strings.Join(flags, ", "))
	}
	if dmi := board.DMI; dmi != nil {
		fmt.Fprintf(out, "DMI:           %s %s (%s)\n", dmi.Manufacturer, dmi.ProductName, dmi.Version)
	}
}
