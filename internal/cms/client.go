// Package cms is a read-only client for the Strapi-style content API.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// GenericMessage is reported when the content API gives no message of its own.
const GenericMessage = "Failed to fetch articles"

const maxBodySize = 10 * 1024 * 1024

var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrMalformedEnvelope    = errors.New("malformed envelope")
	ErrTransport            = errors.New("transport failure")
)

// Error is a failed content API call. Message is safe to show to readers.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("cms: %d: %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("cms: %s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Fetcher is implemented by Client.
type Fetcher interface {
	Posts(ctx context.Context, q Query) (*PostList, error)
}

var _ Fetcher = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	baseURL    string
	collection string
	log        *slog.Logger
	metrics    *Metrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithCollection(name string) Option {
	return func(c *Client) { c.collection = name }
}

// New returns a client for the API rooted at baseURL, e.g. http://localhost:1337.
// The default HTTP client has no timeout; callers bound requests through ctx.
func New(baseURL string, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		collection: "posts",
		log:        log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Posts fetches one page of the collection. Any failure is returned as *Error.
func (c *Client) Posts(ctx context.Context, q Query) (*PostList, error) {
	started := time.Now()
	endpoint := c.baseURL + "/api/" + c.collection + "?" + q.Values().Encode()

	c.log.DebugContext(ctx, "cms request", "url", endpoint)

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		c.metrics.observe(c.collection, outcomeTransport, started)
		c.log.ErrorContext(ctx, "cms request failed", "url", endpoint, "error", err)
		return nil, &Error{Message: GenericMessage, Err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		c.metrics.observe(c.collection, outcomeStatus, started)
		msg := errorMessage(body)
		c.log.ErrorContext(ctx, "cms unexpected status", "url", endpoint, "status", status, "message", msg)
		return nil, &Error{StatusCode: status, Message: msg, Err: ErrUnexpectedStatusCode}
	}

	list, err := decodeList(body)
	if err != nil {
		c.metrics.observe(c.collection, outcomeMalformed, started)
		c.log.ErrorContext(ctx, "cms malformed response", "url", endpoint, "error", err)
		return nil, &Error{StatusCode: status, Message: GenericMessage, Err: err}
	}

	c.metrics.observe(c.collection, outcomeOK, started)
	return list, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// errorMessage extracts error.message from an error envelope, falling back to GenericMessage.
func errorMessage(body []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return GenericMessage
	}
	if msg := strings.TrimSpace(env.Error.Message); msg != "" {
		return msg
	}
	return GenericMessage
}

func decodeList(body []byte) (*PostList, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrMalformedEnvelope)
	}
	if env.Meta.Pagination == nil {
		return nil, fmt.Errorf("%w: missing meta.pagination", ErrMalformedEnvelope)
	}

	p := *env.Meta.Pagination
	if p.Page < 1 || p.PageCount < 0 || p.Total < 0 {
		return nil, fmt.Errorf("%w: invalid pagination %+v", ErrMalformedEnvelope, p)
	}

	return &PostList{Posts: *env.Data, Pagination: p}, nil
}
