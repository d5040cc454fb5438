// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

// Package app implements the pideckctl CLI, a thin client for the
// dashboard daemon's JSON API.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cobra"
)

const Name string = "pideckctl"

// Client talks to a running pideckd instance.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(serverURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", serverURL, err)
	}
	if parsed.Scheme == "" {
		parsed.Scheme = "http"
	}
	return &Client{
		baseURL: parsed.String(),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Get fetches the given API path and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: %s: %s", path, resp.Status, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func NewCommand() *cobra.Command {
	var (
		serverURL string
		timeout   time.Duration
	)

	root := &cobra.Command{
		Use:   Name,
		Short: "CLI client for the pideck dashboard daemon",
		Args:  cobra.NoArgs,
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8443", "Base URL of the pideckd API.")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP request timeout.")

	newClient := func() (*Client, error) {
		return NewClient(serverURL, timeout)
	}
	root.AddCommand(NewBoardCommand(newClient))
	root.AddCommand(NewSnapshotCommand(newClient))
	root.AddCommand(NewWatchCommand(newClient))
	return root
}
