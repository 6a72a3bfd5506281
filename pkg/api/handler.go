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

package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/NVIDIA/relver/pkg/defaults"
	apperrors "github.com/NVIDIA/relver/pkg/errors"
	"github.com/NVIDIA/relver/pkg/header"
	"github.com/NVIDIA/relver/pkg/serializer"
	"github.com/NVIDIA/relver/pkg/server"
	ver "github.com/NVIDIA/relver/pkg/version"
)

// Handler serves version computations over HTTP.
// It is safe for concurrent use.
type Handler struct {
	generator *ver.Generator
	config    ver.Config
	version   string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDefaultConfig sets the configuration used by requests that carry none.
func WithDefaultConfig(cfg ver.Config) HandlerOption {
	return func(h *Handler) {
		h.config = cfg
	}
}

// WithGenerator sets the generator used to compute versions.
func WithGenerator(g *ver.Generator) HandlerOption {
	return func(h *Handler) {
		if g != nil {
			h.generator = g
		}
	}
}

// WithVersion sets the tool version recorded in response metadata.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) {
		h.version = version
	}
}

// NewHandler returns a Handler that logs through slog.Default.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		generator: ver.NewGenerator(ver.WithLogger(slog.Default())),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the application routes served by h. Each handler is
// bounded by defaults.VersionHandlerTimeout.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/plan":  withTimeout(h.HandlePlan),
		"/v1/parts": withTimeout(h.HandleParts),
	}
}

func withTimeout(fn http.HandlerFunc) http.HandlerFunc {
	return http.TimeoutHandler(fn, defaults.VersionHandlerTimeout, "request timed out").ServeHTTP
}

// HandlePlan computes the development and release versions for the
// current version in a PlanRequest body (JSON or YAML).
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req PlanRequest
	if err := decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid plan request", nil)
		return
	}
	if strings.TrimSpace(req.Current) == "" {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"A current version is required", false, nil)
		return
	}

	cfg := h.config
	if req.Config != nil {
		cfg = *req.Config
	}
	if err := cfg.Validate(); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version configuration", nil)
		return
	}

	slog.Debug("plan request",
		"requestID", server.RequestIDFromContext(r.Context()),
		"current", req.Current,
		"branch", req.Branch,
		"requestConfig", req.Config != nil,
	)

	plan, err := h.generator.Plan(cfg, req.Current, req.Branch)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compute versions", nil)
		return
	}

	resp := PlanResponse{Plan: *plan}
	resp.Init(header.KindVersionPlan, h.version)

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleParts returns the integer components of the current version in a
// PartsRequest body (JSON or YAML).
func (h *Handler) HandleParts(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req PartsRequest
	if err := decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid parts request", nil)
		return
	}
	if strings.TrimSpace(req.Current) == "" {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"A current version is required", false, nil)
		return
	}
	if req.Regex == "" {
		req.Regex = ver.ThreeDigitBranchRegex
	}

	parts, err := ver.ExtractIntegerParts(req.Current, req.Regex)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to parse version", nil)
		return
	}

	resp := PartsResponse{
		Current: req.Current,
		Regex:   req.Regex,
		Parts:   parts,
	}
	resp.Init(header.KindVersionParts, h.version)

	serializer.RespondJSON(w, http.StatusOK, resp)
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set("Allow", http.MethodPost)
	server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodPost},
		})
	return false
}

// decodeBody strictly decodes a size-limited request body into v.
// The format follows the Content-Type header, defaulting to JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "request body is empty")
	}

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	reader, err := serializer.NewReader(formatFromContentType(r.Header.Get("Content-Type")), body)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create request reader", err)
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			slog.Debug("failed to close request body", "error", cerr)
		}
	}()

	if err := reader.Deserialize(v); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"request body could not be decoded", err, map[string]any{
				"limitBytes": defaults.MaxRequestBodyBytes,
			})
	}
	return nil
}

func formatFromContentType(contentType string) serializer.Format {
	mediaType, _, _ := strings.Cut(contentType, ";")
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return serializer.FormatYAML
	default:
		return serializer.FormatJSON
	}
}

