// Package api provides the HTTP API for relver.
//
// This package is a thin layer over the reusable pkg/server package: it
// decodes requests, runs the version engine in pkg/version and encodes the
// results. Server lifecycle, middleware and probes are handled by pkg/server.
//
// # Usage
//
//	h := api.NewHandler(
//	    api.WithDefaultConfig(cfg),
//	    api.WithVersion(version),
//	)
//	if err := api.Serve(ctx, server.NewConfig(), h); err != nil {
//	    return err
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - POST /v1/plan: development and release versions for a current version
//   - POST /v1/parts: integer components of a current version
//
// System endpoints (no rate limiting):
//   - GET /health
//   - GET /ready
//   - GET /metrics
//
// # Request Body (POST /v1/plan)
//
// JSON by default; YAML when Content-Type is application/yaml,
// application/x-yaml or text/yaml. Unknown fields are rejected.
// Without "config" the handler's default configuration is used.
//
//	{
//	  "current": "1.2.0-SNAPSHOT",
//	  "branch": false,
//	  "config": {
//	    "devVersionType": "3db",
//	    "releaseVersionRegex": "(\\d+)\\.(\\d+)\\.(\\d+)(-SNAPSHOT)",
//	    "releaseVersionGroup": 4,
//	    "releaseVersionReplacement": ""
//	  }
//	}
//
// Response:
//
//	{
//	  "kind": "VersionPlan",
//	  "apiVersion": "relver.nvidia.com/v1alpha1",
//	  "metadata": {"id": "...", "timestamp": "...", "version": "..."},
//	  "current": "1.2.0-SNAPSHOT",
//	  "branch": false,
//	  "development": "1.3.0-SNAPSHOT",
//	  "release": "1.2.0"
//	}
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/plan \
//	  -H "Content-Type: application/json" \
//	  -d '{"current":"1.2.0-SNAPSHOT","config":{"devVersionType":"3db"}}'
//
// # Errors
//
// Malformed bodies are 400 INVALID_REQUEST. Versions that do not fit the
// configuration are 422 with INVALID_VERSION or INVALID_ARGUMENT.
package api
