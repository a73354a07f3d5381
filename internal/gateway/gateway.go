// Package gateway fetches entity property sets from the knowledge store's
// generic object endpoint.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"heritage/api/internal/rdf"
)

const maxResponseBytes = 8 << 20

// ErrNotFound covers both a missing entity and a non-success answer from
// the store.
var ErrNotFound = errors.New("entity not found")

// UpstreamError reports a transport or decoding failure talking to the store.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("knowledge store %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

var firstRecord = jp.MustParseString("$.data[0]")

// Client talks to the knowledge store over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// New creates a client. A zero timeout leaves the deadline to the caller's
// context.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{}, timeout)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// Fetch returns the first record the store holds for (typ, id). The request
// is bound to ctx so a disconnected client cancels the outbound call.
func (c *Client) Fetch(ctx context.Context, typ, id string) (rdf.PropertySet, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + "/get_object_any_type/" + url.PathEscape(typ) + "/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build store request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "fetch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, ErrNotFound
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &UpstreamError{Op: "read", Err: err}
	}
	parsed, err := oj.Parse(body)
	if err != nil {
		return nil, &UpstreamError{Op: "decode", Err: err}
	}

	record, ok := firstRecord.First(parsed).(map[string]any)
	if !ok {
		return nil, ErrNotFound
	}
	return rdf.PropertySet(record), nil
}

// Ping checks that the store answers HTTP at all.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Op: "ping", Err: err}
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return &UpstreamError{Op: "ping", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return nil
}
