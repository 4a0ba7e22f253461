package recaptcha

import (
	"net/http"
	"time"
)

// DefaultDecoderURL is the Mailhide decoding page. DecodeURL appends
// its query parameters directly, so the default ends with '?'.
const DefaultDecoderURL = "http://www.google.com/recaptcha/mailhide/d?"

// clientConfig holds configuration for the verification client.
type clientConfig struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
}

// mailhideConfig holds configuration for the Mailhide pipeline.
type mailhideConfig struct {
	decoderURL string
}

// Option configures the verification client.
type Option func(*clientConfig)

// MailhideOption configures the Mailhide pipeline.
type MailhideOption func(*mailhideConfig)

// WithVerifyEndpoint sets the verification endpoint URL.
func WithVerifyEndpoint(url string) Option {
	return func(c *clientConfig) {
		c.endpoint = url
	}
}

// WithHTTPClient sets a custom HTTP client for verification calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout bounds the verification round trip. A timed-out call is
// reported as a transport failure, not an error. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithDecoderURL sets the Mailhide decoder page URL. The value must be
// ready for query parameters to be appended verbatim, i.e. end with
// '?' or '&'.
func WithDecoderURL(url string) MailhideOption {
	return func(c *mailhideConfig) {
		c.decoderURL = url
	}
}
