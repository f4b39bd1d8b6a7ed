// Package gymapi is the HTTP client for the remote gym-management API. One
// configured Client serves the whole process; authorization is attached via
// an explicit request decorator so token rotation stays testable.
package gymapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// RequestDecorator mutates an outgoing request before it is sent. The session
// manager installs one to carry the bearer token.
type RequestDecorator func(*http.Request)

// BearerDecorator returns a decorator that sets the Authorization header.
func BearerDecorator(token string) RequestDecorator {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Error is the typed failure for any unsuccessful exchange with the remote
// API. Status is 0 when no response was received at all.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("gym api unreachable: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("gym api returned status %d", e.Status)
	}
	return fmt.Sprintf("gym api returned status %d: %s", e.Status, e.Message)
}

// IsAuthFailure reports whether the remote API rejected the session token.
func (e *Error) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// Client is a thin wrapper over the remote REST API. It performs no retries,
// configures no timeouts beyond transport defaults and caches nothing.
type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.RWMutex
	decorate RequestDecorator
}

// NewClient returns a client for the API at the given absolute base address.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetDecorator installs the request decorator applied to every outgoing
// request. Passing nil clears it.
func (c *Client) SetDecorator(d RequestDecorator) {
	c.mu.Lock()
	c.decorate = d
	c.mu.Unlock()
}

// ClearDecorator removes any installed request decorator.
func (c *Client) ClearDecorator() {
	c.SetDecorator(nil)
}

// Decorated reports whether a request decorator is currently installed.
func (c *Client) Decorated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.decorate != nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// errorBody covers the two error shapes the remote API uses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	decorate := c.decorate
	c.mu.RUnlock()
	if decorate != nil {
		decorate(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(r).Decode(&eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}
