package chatstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func readAll(t *testing.T, s Stream) string {
	t.Helper()
	var out string
	for {
		d, err := s.Recv()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		out += d
	}
}

func TestClientStreamsChunks(t *testing.T) {
	var gotBody chatRequestBody
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, chunk := range []string{
			`data: {"choices":[{"delta":{"content":"Hel"}}]}` + "\n",
			`data: {"choices":[{"delta":{"con`,
			`tent":"lo"}}]}` + "\n\n",
			"data: [DONE]\n",
		} {
			io.WriteString(w, chunk)
			flusher.Flush()
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithPublicKey("pk_test"))
	history := []Message{{Role: RoleUser, Content: "hi"}}
	stream, err := c.Open(context.Background(), history)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer stream.Close()

	if text := readAll(t, stream); text != "Hello" {
		t.Errorf("expected %q, got %q", "Hello", text)
	}
	if gotAuth != "Bearer pk_test" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Content != "hi" || gotBody.Messages[0].Role != RoleUser {
		t.Errorf("unexpected request body: %+v", gotBody)
	}
}

func TestClientEndsWithoutDone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `data: {"choices":[{"delta":{"content":"partial"}}]}`+"\n")
	}))
	defer srv.Close()

	stream, err := NewClient(srv.URL).Open(context.Background(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer stream.Close()
	if text := readAll(t, stream); text != "partial" {
		t.Errorf("expected %q, got %q", "partial", text)
	}
}

func TestClientStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    ErrorKind
		message string
	}{
		{"rate limited with message", 429, `{"error":"slow down"}`, KindRateLimited, "slow down"},
		{"rate limited fallback", 429, ``, KindRateLimited, fallbackRateLimited},
		{"payment required", 402, `{"error":"out of credits"}`, KindPaymentRequired, "out of credits"},
		{"payment fallback", 402, `not json`, KindPaymentRequired, fallbackPaymentRequired},
		{"server error with message", 503, `{"error":"Service temporarily unavailable"}`, KindFailed, "Service temporarily unavailable"},
		{"server error fallback", 500, `<html>oops</html>`, KindFailed, fallbackFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Open(context.Background(), nil)
			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected *StatusError, got %v", err)
			}
			if se.StatusCode != tt.status || se.Kind != tt.kind || se.Message != tt.message {
				t.Errorf("got %+v, want status=%d kind=%s message=%q", se, tt.status, tt.kind, tt.message)
			}
		})
	}
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Open(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Errorf("network failure should not be a StatusError: %v", err)
	}
}
