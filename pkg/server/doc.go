// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides a reusable HTTP server with the operational
// plumbing an API needs: middleware, health probes, metrics and graceful
// shutdown. Application routes are supplied by the caller.
//
// # Architecture
//
// Each application handler is wrapped in the same middleware chain:
//
//   - Prometheus request metrics (relver_http_*)
//   - API version negotiation via the Accept header
//   - Request ID tracking (X-Request-Id, UUID validated)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// # Usage
//
//	s := server.New(
//	    server.WithName("relver"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/plan": handler.HandlePlan,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200
//	cfg.RateLimitBurst = 400
//	s := server.New(server.WithConfig(cfg))
//
// # System Endpoints
//
// These bypass the middleware chain:
//
//   - GET /health: liveness, always 200 while the process serves
//   - GET /ready: readiness, 503 until the listener is up and during shutdown
//   - GET /metrics: Prometheus exposition
//
// GET / lists the registered application routes.
//
// # Errors
//
// Non-2xx responses use ErrorResponse:
//
//	{
//	  "code": "INVALID_VERSION",
//	  "message": "version \"abc\" does not match pattern",
//	  "details": {"regex": "(\\d+)"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps a StructuredError code to the HTTP status with
// HTTPStatusFromCode.
//
// # Configuration
//
// Environment variables:
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown timeout (default 30)
package server
