package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Endpoints relative to the base URL
const (
	PathStart       = "/api/start"
	PathTap         = "/api/tap"
	PathDailyReward = "/api/daily_reward/claim"

	HeaderMasterHash = "X-Masterhash"
)

// maxErrorBody caps how much of a failed response is kept in StatusError.
const maxErrorBody = 512

// Options configures a Client
type Options struct {
	BaseURL   string
	LangCode  string
	UserAgent string
	Timeout   time.Duration
	ProxyURL  string

	// HTTPClient overrides the client built from Timeout and ProxyURL.
	HTTPClient *http.Client
}

// Client talks to the game's REST API. It holds no per-account state.
type Client struct {
	baseURL  string
	langCode string
	headers  http.Header
	http     *http.Client
}

// NewClient creates a new API client
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		var err error
		httpClient, err = NewHTTPClient(opts.Timeout, opts.ProxyURL)
		if err != nil {
			return nil, err
		}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	langCode := opts.LangCode
	if langCode == "" {
		langCode = "en"
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json, text/plain, */*")
	headers.Set("Content-Type", "application/json")
	headers.Set("Origin", baseURL)
	headers.Set("Referer", baseURL+"/")
	if opts.UserAgent != "" {
		headers.Set("User-Agent", opts.UserAgent)
	}

	return &Client{
		baseURL:  baseURL,
		langCode: langCode,
		headers:  headers,
		http:     httpClient,
	}, nil
}

// Start opens a game session for token. The returned Session carries the
// master hash when the server issued one, otherwise it equals session.
func (c *Client) Start(ctx context.Context, session Session, token string) (*StartResult, Session, error) {
	var resp startResponse
	if err := c.post(ctx, session, PathStart, startRequest{LangCode: c.langCode, InitData: token}, &resp); err != nil {
		return nil, session, err
	}

	state, err := resp.GameData.state()
	if err != nil {
		return nil, session, fmt.Errorf("%s: %w", PathStart, err)
	}

	var pending []Task
	for _, task := range resp.TaskInfo {
		if task.Open() {
			pending = append(pending, task)
		}
	}

	return &StartResult{State: state, PendingTasks: pending}, session.withMasterHash(resp.MasterHash), nil
}

// Tap spends count energy in a single batched call and returns the new state.
func (c *Client) Tap(ctx context.Context, session Session, token string, count int64) (*GameState, error) {
	if count <= 0 {
		return nil, fmt.Errorf("tap count must be positive, got %d", count)
	}

	var resp tapResponse
	if err := c.post(ctx, session, PathTap, tapRequest{TapCount: count, InitData: token}, &resp); err != nil {
		return nil, err
	}

	state, err := resp.GameData.state()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PathTap, err)
	}
	return &state, nil
}

// ClaimDailyReward attempts the once-daily claim. The server enforces
// idempotency; a JSON null body means there was nothing to claim.
func (c *Client) ClaimDailyReward(ctx context.Context, session Session, token string) (bool, error) {
	var resp json.RawMessage
	if err := c.post(ctx, session, PathDailyReward, claimRequest{InitData: token}, &resp); err != nil {
		return false, err
	}

	trimmed := bytes.TrimSpace(resp)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	return true, nil
}

// post sends payload as JSON and decodes a 2xx body into out.
func (c *Client) post(ctx context.Context, session Session, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: failed to encode request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", path, err)
	}
	req.Header = c.headers.Clone()
	if session.MasterHash != "" {
		req.Header.Set(HeaderMasterHash, session.MasterHash)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet := strings.TrimSpace(string(data))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return &StatusError{Endpoint: path, Code: res.StatusCode, Body: snippet}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrMalformed, err)
	}
	return nil
}
