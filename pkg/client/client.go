// Package client is a typed Go client for the admin API. It mirrors the
// admin dashboard's workflows: fetch the inventory overview and low-stock
// alerts, submit adjustments and reorders, page through the audit history
// and pull pre-aggregated statistics. All calls take a context and every
// response envelope is decoded into the API's DTO types.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/velvetcart/admin-api/internal/application/dto"
)

// APIError is a non-2xx response decoded from the error envelope. Message
// carries the server's human-readable text verbatim; when the body is not
// a recognizable envelope the message falls back to a generic one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client talks to one admin API instance. It is safe for concurrent use
// once the token is set.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets the bearer token used on authenticated endpoints.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New builds a client for the API at baseURL (scheme + host, no trailing
// path).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login authenticates and stores the returned token on the client, so
// subsequent calls are made as that user.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Overview fetches the full inventory snapshot with header statistics.
func (c *Client) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	var out dto.OverviewResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/inventory", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LowStockAlerts fetches the derived low-stock alert list.
func (c *Client) LowStockAlerts(ctx context.Context) (*dto.AlertsResponse, error) {
	var out dto.AlertsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/inventory/low-stock", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Adjust applies a signed stock delta to one variant.
func (c *Client) Adjust(ctx context.Context, req dto.AdjustRequest) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/inventory/adjust", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reorder requests replenishment for one variant or, with empty size and
// color, for every low-stock variant of the product.
func (c *Client) Reorder(ctx context.Context, req dto.ReorderRequestDTO) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/inventory/reorder", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches one page of the adjustment audit trail. Page size is
// fixed server-side at 50.
func (c *Client) History(ctx context.Context, page int) (*dto.HistoryResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	var out dto.HistoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/inventory/history", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Statistics fetches pre-aggregated adjustment statistics for the period
// (24h, 7d, 30d, 90d). The server falls back to 7d for anything else.
func (c *Client) Statistics(ctx context.Context, period string) (*dto.StatisticsResponse, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var out dto.StatisticsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/inventory/statistics", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request and decodes the response into out. Error
// envelopes become *APIError with the server message preserved.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
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

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	return decodeEnvelope(resp.StatusCode, data, out)
}

// decodeEnvelope turns a response body into out or an *APIError. The
// envelopes are discriminated by their `success` field: a 2xx body with
// success=false is still treated as an error so callers only ever see
// successful payloads on the happy path.
func decodeEnvelope(status int, data []byte, out any) error {
	if status >= 200 && status < 300 {
		var probe struct {
			Success *bool `json:"success"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			return &APIError{StatusCode: status, Message: "unexpected response from server"}
		}
		if probe.Success != nil && !*probe.Success {
			return decodeError(status, data)
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{StatusCode: status, Message: "unexpected response from server"}
		}
		return nil
	}
	return decodeError(status, data)
}

func decodeError(status int, data []byte) error {
	var envelope dto.ErrorResponse
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Message == "" {
		return &APIError{StatusCode: status, Message: "unexpected response from server"}
	}
	return &APIError{StatusCode: status, Code: envelope.Code, Message: envelope.Message}
}
