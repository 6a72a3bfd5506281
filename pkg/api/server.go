package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/relver/pkg/server"
)

// Name is the server name reported on the root route.
const Name = "relver-api"

// NewServer returns an unstarted server with the API routes registered.
// A nil cfg uses server.NewConfig and a nil h uses NewHandler.
func NewServer(cfg *server.Config, h *Handler) *server.Server {
	if cfg == nil {
		cfg = server.NewConfig()
	}
	if h == nil {
		h = NewHandler()
	}
	cfg.Name = Name
	cfg.Version = h.version

	return server.New(
		server.WithConfig(cfg),
		server.WithHandler(h.Routes()),
	)
}

// Serve runs the API server until ctx is canceled or the process is
// signaled.
func Serve(ctx context.Context, cfg *server.Config, h *Handler) error {
	if h == nil {
		h = NewHandler()
	}

	slog.Info("starting",
		"name", Name,
		"version", h.version,
		"defaultConfig", !h.config.IsEmpty(),
	)

	if err := NewServer(cfg, h).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
