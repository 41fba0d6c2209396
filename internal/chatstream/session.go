package chatstream

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/semiotic-labs/agentium-docs/internal/logging"
)

// Notification is a transient, user-visible error message.
type Notification struct {
	Title   string
	Message string
	Kind    ErrorKind
}

// Notifier shows notifications to the user.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Snapshot is the renderable state of a session at one point in time.
type Snapshot struct {
	SessionID string
	State     State
	Messages  []Message
	Input     string
}

// IsLoading reports whether a request is outstanding.
func (s Snapshot) IsLoading() bool { return s.State != StateIdle }

// Session is the state of one chat panel. Submit runs a request on the
// calling goroutine; Close may be called from any goroutine to abandon it.
//
// Update and notification callbacks run with the session locked. They must
// not call back into the Session.
type Session struct {
	mu        sync.Mutex
	id        string
	transport Transport
	notifier  Notifier
	onUpdate  func(Snapshot)
	log       *logging.Logger

	messages []Message
	// inflight is the assistant reply being streamed. It is kept apart from
	// messages and appended to them only when the reply ends.
	inflight *Message
	input    string
	state    State
	closed   bool
	cancel   context.CancelFunc
	stream   Stream
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithNotifier sets where failures are reported.
func WithNotifier(n Notifier) SessionOption {
	return func(s *Session) { s.notifier = n }
}

// WithUpdates registers a callback invoked after every state change.
func WithUpdates(fn func(Snapshot)) SessionOption {
	return func(s *Session) { s.onUpdate = fn }
}

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// NewSession creates an idle session that sends requests through t.
func NewSession(t Transport, opts ...SessionOption) *Session {
	s := &Session{
		id:        uuid.NewString(),
		transport: t,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session_id", s.id)
	return s
}

func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsLoading reports whether a request is outstanding.
func (s *Session) IsLoading() bool {
	return s.State() != StateIdle
}

// Input returns the pending input text.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SetInput replaces the pending input text.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
}

// Messages returns the conversation, including the reply currently being
// streamed.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messagesLocked()
}

func (s *Session) messagesLocked() []Message {
	msgs := slices.Clone(s.messages)
	if s.inflight != nil {
		msgs = append(msgs, *s.inflight)
	}
	return msgs
}

// Snapshot returns the current renderable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID: s.id,
		State:     s.state,
		Messages:  s.messagesLocked(),
		Input:     s.input,
	}
}

// Clear empties the conversation. It fails with ErrBusy while a request is
// outstanding.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return ErrBusy
	}
	s.messages = nil
	s.emitLocked()
	return nil
}

// Ask sets the input to text and submits it.
func (s *Session) Ask(ctx context.Context, text string) error {
	s.SetInput(text)
	return s.Submit(ctx)
}

// Submit sends the pending input with the full conversation and streams the
// reply into the session. Blank input is ignored. The input is cleared once
// the relay accepts the request; it is kept if the request fails before
// that. Submit returns when the reply ends, fails, or the session is closed.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrBusy
	}
	text := strings.TrimSpace(s.input)
	if text == "" {
		s.mu.Unlock()
		return nil
	}

	s.messages = append(s.messages, Message{Role: RoleUser, Content: text})
	history := slices.Clone(s.messages)
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateSending
	s.emitLocked()
	s.mu.Unlock()
	defer cancel()

	s.log.Debug("sending chat request", "messages", len(history))
	stream, err := s.transport.Open(ctx, history)
	if err != nil {
		return s.fail(ctx, err)
	}
	defer stream.Close()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.stream = stream
	s.state = StateStreaming
	s.input = ""
	s.emitLocked()
	s.mu.Unlock()

	var acc strings.Builder
	for {
		delta, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return s.fail(ctx, err)
		}

		acc.WriteString(delta)
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return ErrClosed
		}
		if s.inflight == nil {
			s.inflight = &Message{Role: RoleAssistant}
		}
		// Replace rather than append so a repeated update cannot duplicate text.
		s.inflight.Content = acc.String()
		s.emitLocked()
		s.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.settleLocked()
	s.log.Debug("chat reply complete", "chars", acc.Len())
	s.emitLocked()
	return nil
}

// fail returns the session to idle after err, notifying the user unless the
// request was aborted.
func (s *Session) fail(ctx context.Context, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.settleLocked()

	if ctx.Err() != nil {
		s.log.Debug("chat request aborted", "error", err)
		s.emitLocked()
		return ctx.Err()
	}

	s.log.Error("chat error", "error", err)
	n := Notification{Title: "Error", Message: userMessage(err), Kind: KindFailed}
	var se *StatusError
	if errors.As(err, &se) {
		n.Kind = se.Kind
	}
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
	s.emitLocked()
	return err
}

// settleLocked commits any partial reply and returns to idle.
func (s *Session) settleLocked() {
	if s.inflight != nil {
		s.messages = append(s.messages, *s.inflight)
		s.inflight = nil
	}
	s.stream = nil
	s.cancel = nil
	s.state = StateIdle
}

func (s *Session) emitLocked() {
	if s.onUpdate != nil && !s.closed {
		s.onUpdate(s.snapshotLocked())
	}
}

// Close abandons any outstanding request and stops all further updates.
// Safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	if s.stream != nil {
		_ = s.stream.Close()
	}
	return nil
}
