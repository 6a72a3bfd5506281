/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/relver/pkg/api"
	"github.com/NVIDIA/relver/pkg/defaults"
	"github.com/NVIDIA/relver/pkg/server"
	ver "github.com/NVIDIA/relver/pkg/version"
)

const (
	flagAddress         = "address"
	flagPort            = "port"
	flagRateLimit       = "rate-limit"
	flagRateLimitBurst  = "rate-limit-burst"
	flagShutdownTimeout = "shutdown-timeout"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve version computations over HTTP",
		Description: `Run the relver HTTP API until interrupted.

POST /v1/plan and POST /v1/parts accept JSON or YAML bodies. A plan request
without a "config" uses the configuration loaded with --config.

Example:
  relver serve -c relver.yaml --port 8080`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  flagAddress,
				Usage: "Listen address (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    flagPort,
				Value:   8080,
				Usage:   "Listen port",
				Sources: cli.EnvVars(server.EnvVarPort),
			},
			&cli.IntFlag{
				Name:  flagRateLimit,
				Value: defaults.RateLimit,
				Usage: "Sustained API requests per second",
			},
			&cli.IntFlag{
				Name:  flagRateLimitBurst,
				Value: defaults.RateLimitBurst,
				Usage: "API requests allowed above the rate limit in a burst",
			},
			&cli.DurationFlag{
				Name:  flagShutdownTimeout,
				Value: defaults.ServerShutdownTimeout,
				Usage: "Graceful shutdown timeout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd, noRule, noRule)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid version configuration: %w", err)
			}

			srvCfg, err := serverConfig(cmd)
			if err != nil {
				return err
			}

			h := api.NewHandler(
				api.WithDefaultConfig(cfg),
				api.WithVersion(version),
				api.WithGenerator(ver.NewGenerator(ver.WithLogger(slog.Default()))),
			)

			return api.Serve(ctx, srvCfg, h)
		},
	}
}

// serverConfig builds the server configuration from the serve flags.
func serverConfig(cmd *cli.Command) (*server.Config, error) {
	cfg := server.NewConfig()
	cfg.Address = cmd.String(flagAddress)
	cfg.Port = int(cmd.Int(flagPort))
	cfg.RateLimit = rate.Limit(cmd.Int(flagRateLimit))
	cfg.RateLimitBurst = int(cmd.Int(flagRateLimitBurst))
	cfg.ShutdownTimeout = cmd.Duration(flagShutdownTimeout)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.RateLimit <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("rate limit and burst must be positive, got %v and %d", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("shutdown timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}
