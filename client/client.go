package client

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
	"unicode/utf8"

	"nskk-web/models"
)

// ErrDecode marks a response body that is not the JSON we expected.
var ErrDecode = errors.New("malformed response body")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Client talks to the school REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient lets tests and callers supply their own transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := c.getJSON(ctx, "/api/stats", nil, &stats)
	return stats, err
}

func (c *Client) Applications(ctx context.Context) ([]models.Admission, error) {
	var out []models.Admission
	err := c.getJSON(ctx, "/api/admission/applications", nil, &out)
	return out, err
}

// Apply posts the flat form mapping as the JSON body.
func (c *Client) Apply(ctx context.Context, form models.FormValues) error {
	body, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to marshal admission form: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, "/api/admission/apply", nil, body)
	return err
}

func (c *Client) Approve(ctx context.Context, id int) error {
	path := "/api/admission/" + strconv.Itoa(id) + "/approve"
	_, err := c.do(ctx, http.MethodPut, path, nil, nil)
	return err
}

func (c *Client) BusRoutes(ctx context.Context) ([]models.BusRoute, error) {
	var out []models.BusRoute
	err := c.getJSON(ctx, "/api/bus/routes", nil, &out)
	return out, err
}

// Books lists the catalog; an empty category means no filter.
func (c *Client) Books(ctx context.Context, category string) ([]models.Book, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {category}}
	}
	var out []models.Book
	err := c.getJSON(ctx, "/api/library/books", query, &out)
	return out, err
}

func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	err := c.getJSON(ctx, "/api/events", nil, &out)
	return out, err
}

func (c *Client) Alumni(ctx context.Context) ([]models.Alumni, error) {
	var out []models.Alumni
	err := c.getJSON(ctx, "/api/alumni", nil, &out)
	return out, err
}

func (c *Client) Notices(ctx context.Context) ([]models.Notice, error) {
	var out []models.Notice
	err := c.getJSON(ctx, "/api/notices", nil, &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("GET %s: %w: %v", path, ErrDecode, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: excerpt(body)}
	}
	return body, nil
}

func excerpt(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
