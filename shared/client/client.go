// Package client is the typed gateway to the inventory backend. Every method
// is a single HTTP round trip: no retries, no caching. Failures surface as
// errors carrying a human-readable message (see errors.go for the taxonomy).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Credentials carries the backend session cookies captured at login. The
// backend authenticates every request through these cookies; the gateway
// never handles bearer tokens.
type Credentials struct {
	Cookies []*http.Cookie `json:"cookies"`
}

// Client talks to the inventory backend over HTTP+JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one request and decodes a JSON response into out (which may be
// nil when no body is expected). creds may be nil for unauthenticated calls.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, creds *Credentials, out interface{}) error {
	_, err := c.roundTrip(ctx, method, path, query, body, creds, out)
	return err
}

// roundTrip is do plus access to the raw response, used by Login to capture
// the backend's session cookies.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body interface{}, creds *Credentials, out interface{}) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if creds != nil {
		for _, cookie := range creds.Cookies {
			req.AddCookie(cookie)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		// A bodyless success (204, empty 200) is fine; anything else that is
		// not JSON means we are not talking to the backend we expect.
		if resp.StatusCode >= 200 && resp.StatusCode < 300 && len(bytes.TrimSpace(raw)) == 0 {
			return resp, nil
		}
		return nil, &ProtocolError{Status: resp.StatusCode, Excerpt: excerpt(raw)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrorFromBody(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, &ProtocolError{Status: resp.StatusCode, Excerpt: excerpt(raw)}
		}
	}
	return resp, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// apiErrorFromBody builds an APIError from a JSON error payload, falling back
// to a status-based message when the backend sent no usable message field.
func apiErrorFromBody(status int, raw []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}
	if message == "" {
		message = fmt.Sprintf("server error: %d %s", status, http.StatusText(status))
	}
	return &APIError{Status: status, Message: message}
}

const excerptLimit = 200

func excerpt(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > excerptLimit {
		return s[:excerptLimit] + "..."
	}
	return s
}
