package playground

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MissingParamsError is returned by Client.Call when required parameters are
// empty. The proxy is not contacted.
type MissingParamsError struct {
	Missing []string
}

func (e *MissingParamsError) Error() string {
	return "Missing required parameters: " + strings.Join(e.Missing, ", ")
}

// ProxyError is a non-2xx answer from the proxy.
type ProxyError struct {
	StatusCode int
	Message    string
}

func (e *ProxyError) Error() string {
	return fmt.Sprintf("playground proxy returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the playground proxy.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the proxy at url. A nil hc uses
// http.DefaultClient.
func NewClient(url string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{url: url, httpClient: hc}
}

// Call invokes method with params. Required parameters are checked locally
// first.
func (c *Client) Call(ctx context.Context, methodID string, params map[string]string) (*Result, error) {
	method, ok := Lookup(methodID)
	if !ok {
		return nil, fmt.Errorf("unknown method %q", methodID)
	}
	if missing := method.Missing(params); len(missing) > 0 {
		return nil, &MissingParamsError{Missing: missing}
	}

	wire := make(map[string]any, len(params))
	for _, p := range method.Params {
		v, set := params[p.Name]
		if !set || v == "" {
			continue
		}
		if p.Type == ParamBoolean {
			wire[p.Name] = v == "true"
			continue
		}
		wire[p.Name] = v
	}

	body, err := json.Marshal(Request{Method: method.ID, Parameters: wire})
	if err != nil {
		return nil, fmt.Errorf("encoding playground request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating playground request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling playground proxy: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading playground response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			msg = e.Error
			if e.Message != "" {
				msg += ": " + e.Message
			}
		}
		return nil, &ProxyError{StatusCode: resp.StatusCode, Message: msg}
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding playground response: %w", err)
	}
	return &result, nil
}
