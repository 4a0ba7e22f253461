package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the verification service URL.
	DefaultEndpoint = "http://www.google.com/recaptcha/api/verify"

	// DefaultTimeout bounds the single verification round trip. The
	// protocol specifies no timeout, but an unbounded blocking call is
	// worse than reporting a transport failure.
	DefaultTimeout = 30 * time.Second

	// maxReplySize caps how much of the reply body is read. The real
	// reply is two short lines.
	maxReplySize = 64 * 1024
)

// Client performs the verification protocol's HTTP exchange.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures the API client.
type Option func(*Client)

// WithEndpoint sets the verification endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the HTTP timeout for the verification round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new verification API client.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// VerifyParams are the form fields of a verification request.
type VerifyParams struct {
	PrivateKey string
	RemoteIP   string
	Challenge  string
	Response   string
}

// Verify issues the single synchronous POST and parses the reply. A
// network failure is returned as a *TransportError; a body with no
// parseable first line as ErrUnexpectedFormat. No retries.
func (c *Client) Verify(ctx context.Context, params VerifyParams) (*VerifyReply, error) {
	form := url.Values{
		"privatekey": {params.PrivateKey},
		"remoteip":   {params.RemoteIP},
		"challenge":  {params.Challenge},
		"response":   {params.Response},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err, URL: c.endpoint}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return nil, &TransportError{Err: err, URL: c.endpoint}
	}

	return ParseReply(body)
}
