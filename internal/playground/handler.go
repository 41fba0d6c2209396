package playground

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/semiotic-labs/agentium-docs/internal/logging"
)

// ProxyPath is the playground proxy endpoint.
const ProxyPath = "/functions/v1/agentium-api-proxy"

// Request is the body posted to the proxy.
type Request struct {
	Method     string         `json:"method"`
	Parameters map[string]any `json:"parameters"`
}

// Result is a successful proxy response.
type Result struct {
	Mock       bool            `json:"mock"`
	StatusCode int             `json:"statusCode"`
	Response   json.RawMessage `json:"response"`
}

// Handler serves the mock proxy.
type Handler struct {
	latencyMin time.Duration
	latencyMax time.Duration
	log        *logging.Logger
	now        func() time.Time
}

// NewHandler creates a proxy handler that waits a random duration in
// [latencyMin, latencyMax] before each successful answer.
func NewHandler(latencyMin, latencyMax time.Duration, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	if latencyMax < latencyMin {
		latencyMax = latencyMin
	}
	return &Handler{
		latencyMin: latencyMin,
		latencyMax: latencyMax,
		log:        logger,
		now:        time.Now,
	}
}

// RegisterRoutes mounts the playground routes.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post(ProxyPath, h.handleProxy)
	r.Get("/api/playground/methods", h.handleMethods)
}

func (h *Handler) handleProxy(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&req); err != nil {
		h.log.Warn("playground request rejected", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.log.Info("playground request", "method", req.Method, "parameters", len(req.Parameters))

	resp, ok := mockResponse(req.Method, req.Parameters, h.now())
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Unknown method",
			"message": fmt.Sprintf("Method '%s' is not supported", req.Method),
		})
		return
	}

	if err := sleep(r.Context(), h.latency()); err != nil {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mock":       true,
		"statusCode": http.StatusOK,
		"response":   resp,
	})
}

func (h *Handler) handleMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Methods)
}

func (h *Handler) latency() time.Duration {
	spread := h.latencyMax - h.latencyMin
	if spread <= 0 {
		return h.latencyMin
	}
	return h.latencyMin + time.Duration(rand.Int64N(int64(spread)+1))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
