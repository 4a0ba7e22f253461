package recaptcha

import (
	"context"
	"errors"

	"github.com/captchakit/recaptcha-go/internal/api"
)

// Well-known error codes surfaced in [VerificationResult.ErrorCode].
// The service defines more (see its error code reference); these are
// the ones this client produces on its own.
const (
	// ErrorCodeIncorrectSolution means the user's answer was wrong. It
	// is also reported locally for an empty challenge or response,
	// which the service would reject anyway.
	ErrorCodeIncorrectSolution = "incorrect-captcha-sol"

	// ErrorCodeTransport means the HTTP round trip could not complete.
	ErrorCodeTransport = "transport-error"

	// ErrorCodeUnexpectedFormat means the service replied with a body
	// that has no parseable result line.
	ErrorCodeUnexpectedFormat = "unexpected-response-format"
)

// VerificationResult is the outcome of one verification call.
type VerificationResult struct {
	// Valid reports whether the service accepted the user's answer.
	Valid bool

	// ErrorCode is the service's error code when Valid is false, or
	// one of the ErrorCode constants for failures local to this
	// client. Empty when Valid is true, and possibly empty on failure
	// when the service sent no code.
	ErrorCode string
}

// Client verifies solved CAPTCHA challenges against the remote service.
// It is immutable after construction and safe for concurrent use; each
// Verify call is independent.
type Client struct {
	keys KeyPair
	api  *api.Client
}

// New creates a verification client for the given key pair.
func New(keys KeyPair, opts ...Option) (*Client, error) {
	if keys.Public == "" {
		return nil, ErrMissingPublicKey
	}
	if keys.Private == "" {
		return nil, ErrMissingPrivateKey
	}

	cfg := &clientConfig{
		endpoint: api.DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{api.WithEndpoint(cfg.endpoint)}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}

	apiClient := api.New(apiOpts...)
	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{keys: keys, api: apiClient}, nil
}

// PublicKey returns the public key of the configured pair, for embedding
// in widget markup.
func (c *Client) PublicKey() string {
	return c.keys.Public
}

// Verify submits the user's solved challenge in a single synchronous
// POST and reports the outcome. remoteIP is the end user's address as
// seen by the caller's server; challenge and response are the two form
// fields the widget produced.
//
// Verify never returns an error. A transport failure or an unparseable
// reply yields Valid=false with ErrorCodeTransport or
// ErrorCodeUnexpectedFormat, keeping the boolean contract intact for
// callers that gate on Valid alone. There are no retries.
func (c *Client) Verify(ctx context.Context, remoteIP, challenge, response string) VerificationResult {
	// The service rejects blank fields; skip the round trip.
	if challenge == "" || response == "" {
		return VerificationResult{Valid: false, ErrorCode: ErrorCodeIncorrectSolution}
	}

	reply, err := c.api.Verify(ctx, api.VerifyParams{
		PrivateKey: c.keys.Private,
		RemoteIP:   remoteIP,
		Challenge:  challenge,
		Response:   response,
	})
	if err != nil {
		var transportErr *api.TransportError
		if errors.As(err, &transportErr) {
			return VerificationResult{Valid: false, ErrorCode: ErrorCodeTransport}
		}
		if errors.Is(err, api.ErrUnexpectedFormat) {
			return VerificationResult{Valid: false, ErrorCode: ErrorCodeUnexpectedFormat}
		}
		// Request construction failures land here; treat them like any
		// other failure to complete the exchange.
		return VerificationResult{Valid: false, ErrorCode: ErrorCodeTransport}
	}

	return VerificationResult{Valid: reply.Valid, ErrorCode: reply.ErrorCode}
}
