package chatstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const readChunkSize = 4096

// Transport opens a streamed reply for a conversation.
type Transport interface {
	Open(ctx context.Context, history []Message) (Stream, error)
}

// Stream yields the text deltas of one reply.
type Stream interface {
	// Recv returns the next non-empty delta. It returns io.EOF once the
	// reply has ended.
	Recv() (string, error)
	// Close releases the underlying connection.
	Close() error
}

// Client talks to the chat relay over HTTP.
type Client struct {
	url         string
	publicKey   string
	httpClient  *http.Client
	maxBuffered int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithPublicKey sets the bearer key sent with every request.
func WithPublicKey(key string) ClientOption {
	return func(c *Client) { c.publicKey = key }
}

// WithMaxBuffered bounds how much text a stream holds back while waiting for
// a frame to complete.
func WithMaxBuffered(n int) ClientOption {
	return func(c *Client) { c.maxBuffered = n }
}

// NewClient creates a client for the relay at url.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:         url,
		httpClient:  http.DefaultClient,
		maxBuffered: DefaultMaxBuffered,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequestBody struct {
	Messages []Message `json:"messages"`
}

// Open posts history to the relay and returns the reply stream once the
// response headers indicate success. Non-2xx responses are returned as
// *StatusError.
func (c *Client) Open(ctx context.Context, history []Message) (Stream, error) {
	body, err := json.Marshal(chatRequestBody{Messages: history})
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if c.publicKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.publicKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending chat request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, newStatusError(resp.StatusCode, data)
	}

	dec := NewDecoder()
	dec.MaxBuffered = c.maxBuffered
	return &bodyStream{body: resp.Body, dec: dec, buf: make([]byte, readChunkSize)}, nil
}

// bodyStream reads an HTTP response body chunk by chunk and decodes it as it
// arrives.
type bodyStream struct {
	body    io.ReadCloser
	dec     *Decoder
	buf     []byte
	pending []string
	ended   bool
}

func (s *bodyStream) Recv() (string, error) {
	for {
		if len(s.pending) > 0 {
			delta := s.pending[0]
			s.pending = s.pending[1:]
			return delta, nil
		}
		if s.ended || s.dec.Done() {
			return "", io.EOF
		}

		n, err := s.body.Read(s.buf)
		if n > 0 {
			for _, f := range s.dec.Feed(s.buf[:n]) {
				if f.Delta != "" {
					s.pending = append(s.pending, f.Delta)
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.ended = true
				continue
			}
			return "", fmt.Errorf("reading chat stream: %w", err)
		}
	}
}

func (s *bodyStream) Close() error {
	return s.body.Close()
}
