// Package client is a small HTTP client for the fieldops API. It sends
// payloads as-is and surfaces the server's error message when one is
// present. It holds no cache: after a successful create, listings already
// fetched elsewhere are stale until their owner refetches them.
package client

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

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a client for the API at baseURL, authenticating every
// request with the given bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient is New with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL, token string, httpClient *http.Client) *Client {
	c := New(baseURL, token)
	if httpClient != nil {
		c.http = httpClient
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is a non-2xx response with a server-provided message.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if env.Data == nil {
		return fmt.Errorf("response has no data")
	}
	return json.Unmarshal(env.Data, out)
}

// decodeError pulls the human-readable message out of an error envelope,
// falling back to a generic one when the body is not parseable.
func decodeError(status int, raw []byte) error {
	apiErr := &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("request failed with status %d", status),
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil && env.Error.Message != "" {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}

	return apiErr
}
