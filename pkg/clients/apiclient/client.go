// Package apiclient wraps the ShiftBridge REST API. All endpoints speak
// JSON with a {success, message, errors, data} envelope and bearer-token
// authentication.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/shiftbridge/swapboard/internal/config"
)

// Client wraps the ShiftBridge API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates an unauthenticated client (registration, login, OTP flows)
func New(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout()},
		logger:     logger,
	}
}

// WithToken returns a copy of the client whose requests carry the bearer
// token. The token is opaque and replayed verbatim.
func (c *Client) WithToken(ctx context.Context, token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	authed := oauth2.NewClient(ctx, src)
	authed.Timeout = c.httpClient.Timeout

	clone := *c
	clone.httpClient = authed
	return &clone
}

// envelope is the API's uniform response shape
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

// do performs one API call: marshal the body, send with a correlation id,
// decode the envelope, and map failures onto the error taxonomy
// (ErrSessionExpired, *APIError, *ConnectivityError).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Debug("API request failed", zap.String("path", path), zap.Error(err))
		return &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ConnectivityError{Err: err}
	}

	c.logger.Debug("API response",
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode))

	// 401 always means the session is gone, whatever the body says
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 400 || (decodeErr == nil && len(raw) > 0 && !env.Success) {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Message
			apiErr.FieldErrors = env.Errors
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode response body: %w", decodeErr)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
