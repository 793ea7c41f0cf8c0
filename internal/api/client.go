// Package api is the HTTP client for the Adventure of Textland server.
// The server is the single source of truth for every game turn; this
// package only moves JSON across the wire.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrorResponse matches the server's error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusError is a non-2xx reply that carried a parseable body. It is
// distinct from transport failures, which surface as *url.Error.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API returned status %d", e.Code)
}

// IsConnectivityError reports whether an error looks like a network or
// connectivity failure rather than a server-side rejection.
func IsConnectivityError(err error) bool {
	var ue *url.Error
	return errors.As(err, &ue)
}

// Client talks to the game server.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: baseURL}
}

// get issues a GET and decodes the 200 body into out.
func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// post issues a POST with an optional JSON payload and decodes the 200
// body into out (when out is non-nil).
func (c *Client) post(path string, in, out interface{}) error {
	var reqBody io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	resp, err := c.http.Post(c.baseURL+path, "application/json", reqBody)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

func statusError(code int, body []byte) error {
	var errorResp ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
		return &StatusError{Code: code, Message: fmt.Sprintf("API returned status %d: %s", code, string(body))}
	}
	return &StatusError{Code: code, Message: errorResp.Error}
}
