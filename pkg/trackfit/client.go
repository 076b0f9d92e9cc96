package trackfit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrMissingToken is returned by authorized calls made without a token.
var ErrMissingToken = errors.New("auth token is required")

// Client is the HTTP wrapper for the TrackFit REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new TrackFit HTTP client. baseURL includes the /api prefix.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StartSession creates a session via POST /auth/start. It needs no token.
func (c *Client) StartSession(ctx context.Context, req StartSessionRequest) (*StartSessionResponse, error) {
	var out StartSessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/start", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Overview fetches GET /stats/overview.
func (c *Client) Overview(ctx context.Context, token string) (*OverviewStats, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	var out OverviewStats
	if err := c.do(ctx, http.MethodGet, "/stats/overview", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRoutines fetches GET /routines.
func (c *Client) ListRoutines(ctx context.Context, token string) ([]RoutineTask, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	var out []RoutineTask
	if err := c.do(ctx, http.MethodGet, "/routines", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRoutine creates a routine task via POST /routines.
func (c *Client) CreateRoutine(ctx context.Context, token string, req CreateRoutineRequest) error {
	if token == "" {
		return ErrMissingToken
	}
	return c.do(ctx, http.MethodPost, "/routines", token, req, nil)
}

// SetRoutineCompleted calls PATCH /routines/{id}/completed?value=bool.
func (c *Client) SetRoutineCompleted(ctx context.Context, token, id string, value bool) error {
	if token == "" {
		return ErrMissingToken
	}
	path := fmt.Sprintf("/routines/%s/completed?value=%s", url.PathEscape(id), strconv.FormatBool(value))
	return c.do(ctx, http.MethodPatch, path, token, nil, nil)
}

// DeleteRoutine calls DELETE /routines/{id}.
func (c *Client) DeleteRoutine(ctx context.Context, token, id string) error {
	if token == "" {
		return ErrMissingToken
	}
	return c.do(ctx, http.MethodDelete, "/routines/"+url.PathEscape(id), token, nil, nil)
}

// do sends one JSON request. out may be nil; an empty success body is not an error.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set(AuthTokenHeader, token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call trackfit %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read trackfit %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = DefaultErrorMessage
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode trackfit %s %s response: %w", method, path, err)
	}
	return nil
}
