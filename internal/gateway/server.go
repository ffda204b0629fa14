// Package gateway exposes the agent over HTTP: a responses endpoint for
// programmatic callers, a health probe, and a websocket chat endpoint.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/lakebot/lakebot/internal/agent"
	"github.com/lakebot/lakebot/internal/config"
	"github.com/lakebot/lakebot/internal/schema"
)

// Server hosts the agent endpoints. One adapter instance serves all
// requests; each request runs its own planner/tool loop to completion.
type Server struct {
	adapter *agent.ResponsesAdapter
	cfg     config.GatewayConfig
	http    *http.Server
}

// NewServer builds a Server bound to the configured host and port.
func NewServer(adapter *agent.ResponsesAdapter, cfg config.GatewayConfig) *Server {
	s := &Server{adapter: adapter, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/responses", s.handleResponses)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /ws", s.handleWS)

	s.http = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.http.Addr }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		slog.Info("gateway listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.http.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("gateway: %w", err)
		}
		return nil
	}
}

// handleResponses is the programmatic entry point. The adapter owns the
// error contract, so every well-formed JSON body gets HTTP 200 and a
// response object; only undecodable bodies get a transport-level error.
func (s *Server) handleResponses(w http.ResponseWriter, r *http.Request) {
	var req schema.AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	resp := s.adapter.Respond(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "error", err)
	}
}
