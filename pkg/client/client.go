// Package client is the jobdeck API client: one choke point for all
// backend calls, with bearer-token injection and a single transparent
// refresh-and-retry on expired access tokens.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jobdeck/jobdeck/pkg/session"
)

// publicPaths are sent without an Authorization header and never trigger
// a token refresh.
var publicPaths = []string{
	"/auth/login/",
	"/auth/register/",
	"/api/token/refresh/",
}

// isPublic matches case-insensitively, like the path check in the web
// client this replaces.
func isPublic(path string) bool {
	lower := strings.ToLower(path)
	for _, p := range publicPaths {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// Client is the jobdeck API client.
type Client struct {
	baseURL    string
	session    *session.Store
	httpClient *http.Client

	refreshMu sync.Mutex

	// onAuthExpired fires after an unrecoverable refresh failure, once the
	// session has been cleared. The TUI uses it to route back to login.
	onAuthExpired func()
}

// New creates a new API client bound to a session store.
func New(baseURL string, sess *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: sess,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// OnAuthExpired registers the forced-logout callback.
func (c *Client) OnAuthExpired(fn func()) {
	c.onAuthExpired = fn
}

// Session exposes the session store for read-only use by views.
func (c *Client) Session() *session.Store {
	return c.session
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, params url.Values, body, out any) error {
	var raw []byte
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		raw = data
		contentType = "application/json"
	}
	return c.send(ctx, method, path, params, contentType, raw, out)
}

// uploadFile sends a single file as a multipart form through the same
// auth/retry pipeline as every other request.
func (c *Client) uploadFile(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}
	return c.send(ctx, http.MethodPost, path, nil, w.FormDataContentType(), buf.Bytes(), out)
}

// send performs one request, refreshing the access token and replaying
// exactly once when a private call comes back 401. The body is a byte
// slice so the replay reuses it verbatim.
func (c *Client) send(ctx context.Context, method, path string, params url.Values, contentType string, body []byte, out any) error {
	err := c.sendOnce(ctx, method, path, params, contentType, body, out)
	if err == nil || isPublic(path) || !IsStatus(err, http.StatusUnauthorized) {
		return err
	}

	if refreshErr := c.refreshAccess(ctx); refreshErr != nil {
		c.session.Clear() //nolint:errcheck // credentials are gone either way
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
		return &APIError{StatusCode: http.StatusUnauthorized, Message: "session expired — log in again"}
	}

	// One replay with the new token; a second 401 propagates as-is.
	return c.sendOnce(ctx, method, path, params, contentType, body, out)
}

func (c *Client) sendOnce(ctx context.Context, method, path string, params url.Values, contentType string, body []byte, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok, status := c.session.AccessToken(); status == session.TokenPresent && !isPublic(path) {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		return parseErrorBody(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// parseErrorBody extracts the server's error payload: a "detail" or
// "error" message, or a field-error map of the form {field: [messages]}.
func parseErrorBody(status int, body []byte) *APIError {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
	}

	apiErr := &APIError{StatusCode: status}
	for key, raw := range payload {
		var msg string
		if json.Unmarshal(raw, &msg) == nil {
			if key == "detail" || key == "error" || key == "message" {
				apiErr.Message = msg
				continue
			}
			msg = strings.TrimSpace(msg)
			if msg != "" {
				if apiErr.Fields == nil {
					apiErr.Fields = map[string][]string{}
				}
				apiErr.Fields[key] = []string{msg}
			}
			continue
		}
		var msgs []string
		if json.Unmarshal(raw, &msgs) == nil && len(msgs) > 0 {
			if apiErr.Fields == nil {
				apiErr.Fields = map[string][]string{}
			}
			apiErr.Fields[key] = msgs
		}
	}
	if apiErr.Message == "" && len(apiErr.Fields) == 0 {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

// refreshAccess exchanges the stored refresh token for a new access
// token. Serialized so concurrent 401s trigger a single refresh.
func (c *Client) refreshAccess(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refresh := c.session.RefreshToken()
	if refresh == "" {
		return fmt.Errorf("no refresh token")
	}
	c.session.SetRefreshing()

	var resp struct {
		Access string `json:"access"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/token/refresh/", nil, map[string]string{"refresh": refresh}, &resp)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	if resp.Access == "" {
		return fmt.Errorf("refresh token: empty access token in response")
	}
	return c.session.SetAccessToken(resp.Access)
}
