// Package relay serves the docs assistant: it forwards a conversation to the
// LLM gateway with the documentation prompt prepended and streams the reply
// back as server-sent events or WebSocket messages.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/semiotic-labs/agentium-docs/internal/llm"
	"github.com/semiotic-labs/agentium-docs/internal/logging"
	"github.com/semiotic-labs/agentium-docs/internal/render"
)

// ChatPath is the streaming chat endpoint.
const ChatPath = "/functions/v1/docs-ai-chat"

// maxBodyBytes bounds an incoming conversation.
const maxBodyBytes = 1 << 20

// Client-facing error texts.
const (
	msgTooManyRequests = "Too many requests. Please try again later."
	msgUnavailable     = "Service temporarily unavailable"
	msgUpstreamLimited = "Rate limit exceeded. Please try again later."
	msgUpstreamPayment = "Service temporarily unavailable. Please try again later."
	msgUpstreamFailed  = "Unable to process your request. Please try again later."
)

// Options configures a Handler.
type Options struct {
	// Provider is the upstream gateway. When nil every request is answered
	// with 503.
	Provider llm.Provider
	Model    string
	// RateLimit requests per RateWindow are allowed per client key.
	RateLimit  int
	RateWindow time.Duration
	Renderer   *render.Renderer
	Logger     *logging.Logger
}

// Handler serves the chat relay endpoints.
type Handler struct {
	provider llm.Provider
	model    string
	limiter  *Limiter
	renderer *render.Renderer
	log      *logging.Logger
	upgrader websocket.Upgrader
}

// New creates a relay handler.
func New(opts Options) *Handler {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 20
	}
	if opts.RateWindow <= 0 {
		opts.RateWindow = time.Hour
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New("")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return &Handler{
		provider: opts.Provider,
		model:    opts.Model,
		limiter:  NewLimiter(opts.RateLimit, opts.RateWindow),
		renderer: opts.Renderer,
		log:      opts.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts the chat relay routes.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post(ChatPath, h.handleChat)
	r.Get("/ws/chat", h.handleWebSocket)
}

// chatRequest is the body of a chat request and of each WebSocket turn.
type chatRequest struct {
	Messages []llm.Message `json:"messages"`
}

func (c chatRequest) validate() error {
	if len(c.Messages) == 0 {
		return errors.New("messages are required")
	}
	for i, m := range c.Messages {
		if m.Role != llm.RoleUser && m.Role != llm.RoleAssistant {
			return fmt.Errorf("messages[%d]: invalid role %q", i, m.Role)
		}
	}
	return nil
}

// Wire shape of one event, matching the gateway's chunk format.
type eventChunk struct {
	Choices []eventChoice `json:"choices"`
}

type eventChoice struct {
	Delta        eventDelta `json:"delta"`
	FinishReason string     `json:"finish_reason,omitempty"`
}

type eventDelta struct {
	Content string `json:"content"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r.Context())
	key := ClientKey(r)
	log := h.log.With("request_id", reqID, "client", key)

	if !h.limiter.Allow(key) {
		log.Warn("rate limit exceeded")
		writeError(w, http.StatusTooManyRequests, msgTooManyRequests)
		return
	}

	if h.provider == nil {
		log.Error("gateway key is not configured", "env", llm.GatewayKeyEnvVar)
		writeError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stream, err := h.open(r.Context(), req.Messages)
	if err != nil {
		status, msg := upstreamError(err)
		log.Error("gateway request failed", "upstream_status", llm.StatusCode(err), "error", err)
		writeError(w, status, msg)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)

	start := time.Now()
	chunks := 0
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Headers are gone; the client sees the stream end without [DONE].
			log.Error("gateway stream failed", "chunks", chunks, "error", err)
			return
		}
		if chunk.Content == "" && chunk.FinishReason == "" {
			continue
		}
		data, err := json.Marshal(eventChunk{Choices: []eventChoice{{
			Delta:        eventDelta{Content: chunk.Content},
			FinishReason: chunk.FinishReason,
		}}})
		if err != nil {
			log.Error("encoding event", "error", err)
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			log.Debug("client went away", "error", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
		chunks++
	}

	io.WriteString(w, "data: [DONE]\n\n")
	if flusher != nil {
		flusher.Flush()
	}
	log.Info("chat relayed", "messages", len(req.Messages), "chunks", chunks, "duration", time.Since(start))
}

// open forwards history upstream behind the system prompt.
func (h *Handler) open(ctx context.Context, history []llm.Message) (llm.ChunkStream, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: SystemPrompt})
	messages = append(messages, history...)
	return h.provider.Stream(ctx, llm.CompletionRequest{
		Model:    h.model,
		Messages: messages,
	})
}

// upstreamError maps a gateway failure to the status and text shown to the
// client.
func upstreamError(err error) (int, string) {
	switch llm.StatusCode(err) {
	case http.StatusTooManyRequests:
		return http.StatusTooManyRequests, msgUpstreamLimited
	case http.StatusPaymentRequired:
		return http.StatusServiceUnavailable, msgUpstreamPayment
	default:
		return http.StatusServiceUnavailable, msgUpstreamFailed
	}
}

func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
