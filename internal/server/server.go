// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the dashboard over HTTP: the HTML index page,
// the JSON API under /api/v1, a health probe and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pideck/pideck/internal/api/info"
	"github.com/pideck/pideck/internal/config"
)

// Source supplies the data served by the handlers. The collector
// package provides the production implementation.
type Source interface {
	Board(ctx context.Context) (info.Board, error)
	CPU(ctx context.Context) (info.CPU, error)
	Memory(ctx context.Context) (info.Memory, error)
	Disks(ctx context.Context) ([]info.DiskUsage, error)
	BlockDevices() ([]info.BlockDevice, error)
	Processes(ctx context.Context) ([]info.Process, error)
	Network() ([]info.NetworkInterface, error)
	Wifi(ctx context.Context, forceRescan bool) (info.WifiScan, error)
	Host(ctx context.Context) (info.Host, error)
	Snapshot(ctx context.Context) info.Snapshot
	Reboot(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Server holds the HTTP server's state.
type Server struct {
	addr     string
	mux      *http.ServeMux
	log      logr.Logger
	cfg      config.Config
	source   Source
	cache    *snapshotCache
	registry *prometheus.Registry
}

// NewServer initializes and returns a new Server instance.
func NewServer(log logr.Logger, cfg config.Config, source Source) *Server {
	server := &Server{
		addr:   cfg.Address,
		mux:    http.NewServeMux(),
		log:    log,
		cfg:    cfg,
		source: source,
	}
	server.cache = newSnapshotCache(time.Duration(cfg.SnapshotTTL), source.Snapshot)
	server.registry = prometheus.NewRegistry()
	server.registry.MustRegister(newSystemCollector(server.cache))
	server.routes()
	return server
}

// routes registers the server's routes.
func (s *Server) routes() {
	s.mux.HandleFunc("/", s.indexHandler)
	s.mux.HandleFunc("/healthz", s.healthzHandler)
	s.mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/api/v1/board", s.boardHandler)
	s.mux.HandleFunc("/api/v1/cpu", s.cpuHandler)
	s.mux.HandleFunc("/api/v1/memory", s.memoryHandler)
	s.mux.HandleFunc("/api/v1/disks", s.disksHandler)
	s.mux.HandleFunc("/api/v1/processes", s.processesHandler)
	s.mux.HandleFunc("/api/v1/network", s.networkHandler)
	s.mux.HandleFunc("/api/v1/wifi", s.wifiHandler)
	s.mux.HandleFunc("/api/v1/host", s.hostHandler)
	s.mux.HandleFunc("/api/v1/snapshot", s.snapshotHandler)
	s.mux.HandleFunc("/api/v1/power/reboot", s.rebootHandler)
	s.mux.HandleFunc("/api/v1/power/shutdown", s.shutdownHandler)
}

func (s *Server) writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		http.Error(w, "Failed to encode result", http.StatusInternalServerError)
		s.log.Error(err, "Error encoding response")
	}
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "Only GET method is allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) healthzHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// boardHandler serves the decoded board identity. A malformed revision
// code still yields the partial identity so the client can render a
// degraded "unknown board" view.
func (s *Server) boardHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	board, err := s.source.Board(r.Context())
	if err != nil {
		s.log.Error(err, "board identity degraded")
	}
	s.writeJSON(w, board)
}

func (s *Server) cpuHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	cpu, err := s.source.CPU(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, cpu)
}

func (s *Server) memoryHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	memory, err := s.source.Memory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, memory)
}

func (s *Server) disksHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	disks, err := s.source.Disks(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	blockDevices, err := s.source.BlockDevices()
	if err != nil {
		s.log.Error(err, "block device inventory degraded")
	}
	s.writeJSON(w, struct {
		Disks        []info.DiskUsage   `json:"disks"`
		BlockDevices []info.BlockDevice `json:"blockDevices,omitempty"`
	}{Disks: disks, BlockDevices: blockDevices})
}

func (s *Server) processesHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	processes, err := s.source.Processes(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, processes)
}

func (s *Server) networkHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	interfaces, err := s.source.Network()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, interfaces)
}

func (s *Server) wifiHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	scan, err := s.source.Wifi(r.Context(), r.URL.Query().Get("rescan") == "yes")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, scan)
}

func (s *Server) hostHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	host, err := s.source.Host(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, host)
}

func (s *Server) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	s.writeJSON(w, s.cache.Get(r.Context()))
}

func (s *Server) rebootHandler(w http.ResponseWriter, r *http.Request) {
	s.powerHandler(w, r, "reboot", s.source.Reboot)
}

func (s *Server) shutdownHandler(w http.ResponseWriter, r *http.Request) {
	s.powerHandler(w, r, "shutdown", s.source.Shutdown)
}

func (s *Server) powerHandler(w http.ResponseWriter, r *http.Request, action string, run func(ctx context.Context) error) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.cfg.AllowPowerControl {
		http.Error(w, "Power control is disabled", http.StatusForbidden)
		return
	}
	s.log.Info("Power action requested", "action", action)
	if err := run(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.cache.Invalidate()
	w.WriteHeader(http.StatusAccepted)
}

// Start starts the server on the specified address and shuts it down
// gracefully when the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.log.Info("Starting dashboard server", "address", s.addr)
	server := &http.Server{Addr: s.addr, Handler: s.mux}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP dashboard server ListenAndServe: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down dashboard server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server Shutdown: %w", err)
		}
		s.log.Info("Dashboard server graciously stopped")
		return nil
	case err := <-errChan:
		if shutdownErr := server.Shutdown(ctx); shutdownErr != nil {
			s.log.Error(shutdownErr, "Error shutting down dashboard server")
		}
		return err
	}
}
