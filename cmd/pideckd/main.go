// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pideck/pideck/internal/collector"
	"github.com/pideck/pideck/internal/config"
	"github.com/pideck/pideck/internal/server"
)

func main() {
	var (
		configPath string
		address    string
		dev        bool
	)

	root := &cobra.Command{
		Use:   "pideckd",
		Short: "System dashboard daemon for Raspberry Pi hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(configPath, address, dev)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "Path to the YAML configuration file.")
	root.Flags().StringVar(&address, "address", "", "Listen address, overrides the configuration file.")
	root.Flags().BoolVar(&dev, "dev", false, "Enable development logging (console encoder, debug level).")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath, address string, dev bool) error {
	zapLog, err := newZapLogger(dev)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = zapLog.Sync() }()
	log := zapr.NewLogger(zapLog)

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Error(err, "Failed to load configuration", "path", configPath)
			return err
		}
	}
	if address != "" {
		cfg.Address = address
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(log.WithName("server"), cfg, collector.New(log.WithName("collector"), cfg))
	if err := srv.Start(ctx); err != nil {
		log.Error(err, "Problem running dashboard server")
		return err
	}
	return nil
}

func newZapLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
