package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/semiotic-labs/agentium-docs/internal/logging"
)

// Message types sent over /ws/chat.
const (
	wsDelta = "delta"
	wsDone  = "done"
	wsError = "error"
)

// wsResponse is the outgoing WebSocket message format. Content and HTML
// carry the whole reply so far, not just the latest delta.
type wsResponse struct {
	Type    string `json:"type"`
	TurnID  string `json:"turn_id,omitempty"`
	Content string `json:"content,omitempty"`
	HTML    string `json:"html,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	key := ClientKey(r)
	log := h.log.With("request_id", requestID(r.Context()), "client", key)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", "error", err)
			}
			return
		}

		// Same order as the HTTP endpoint: rate limit, gateway key, body.
		turn := uuid.NewString()
		if !h.limiter.Allow(key) {
			log.Warn("rate limit exceeded")
			h.sendWS(conn, log, wsResponse{Type: wsError, TurnID: turn, Error: msgTooManyRequests})
			continue
		}
		if h.provider == nil {
			log.Error("gateway key is not configured")
			h.sendWS(conn, log, wsResponse{Type: wsError, TurnID: turn, Error: msgUnavailable})
			continue
		}
		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.sendWS(conn, log, wsResponse{Type: wsError, TurnID: turn, Error: "invalid message format"})
			continue
		}
		if err := req.validate(); err != nil {
			h.sendWS(conn, log, wsResponse{Type: wsError, TurnID: turn, Error: err.Error()})
			continue
		}

		if !h.streamTurn(r.Context(), conn, log.With("turn_id", turn), turn, req) {
			return
		}
	}
}

// streamTurn relays one reply. It returns false once the connection is no
// longer writable.
func (h *Handler) streamTurn(ctx context.Context, conn *websocket.Conn, log *logging.Logger, turn string, req chatRequest) bool {
	stream, err := h.open(ctx, req.Messages)
	if err != nil {
		_, msg := upstreamError(err)
		log.Error("gateway request failed", "error", err)
		return h.sendWS(conn, log, wsResponse{Type: wsError, TurnID: turn, Error: msg})
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Error("gateway stream failed", "error", err)
			return h.sendWS(conn, log, wsResponse{Type: wsError, TurnID: turn, Content: reply.String(), Error: msgUpstreamFailed})
		}
		if chunk.Content == "" {
			continue
		}
		reply.WriteString(chunk.Content)

		html, err := h.renderer.Markdown(reply.String())
		if err != nil {
			log.Warn("rendering reply", "error", err)
		}
		if !h.sendWS(conn, log, wsResponse{Type: wsDelta, TurnID: turn, Content: reply.String(), HTML: html}) {
			return false
		}
	}
	return h.sendWS(conn, log, wsResponse{Type: wsDone, TurnID: turn})
}

func (h *Handler) sendWS(conn *websocket.Conn, log *logging.Logger, resp wsResponse) bool {
	if err := conn.WriteJSON(resp); err != nil {
		log.Debug("websocket write failed", "error", err)
		return false
	}
	return true
}
