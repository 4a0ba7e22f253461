package recaptcha

import (
	"crypto/cipher"
	"fmt"
	"html"
	"strings"

	"github.com/captchakit/recaptcha-go/internal/mailcrypt"
)

// Mailhide encrypts email addresses into reveal URLs that the remote
// decoding page opens after a solved CAPTCHA. It is immutable after
// construction and safe for concurrent use.
//
// The pipeline is deterministic: the IV is fixed to sixteen zero bytes,
// so the same address under the same key always yields the same URL.
// That is what the remote decoder expects, and it means the ciphertext
// offers no confidentiality against comparison.
type Mailhide struct {
	keys       KeyPair
	block      cipher.Block
	decoderURL string
}

// NewMailhide creates a Mailhide pipeline for the given key pair. The
// private key must be a 32-character hex string; anything that does not
// decode to exactly 16 bytes fails with ErrInvalidKeyLength here,
// before any address can be encrypted under a wrong key.
func NewMailhide(keys KeyPair, opts ...MailhideOption) (*Mailhide, error) {
	if keys.Public == "" {
		return nil, ErrMissingPublicKey
	}
	if keys.Private == "" {
		return nil, ErrMissingPrivateKey
	}

	rawKey, err := mailcrypt.DecodeKey(keys.Private)
	if err != nil {
		return nil, err
	}
	block, err := mailcrypt.ExpandKey(rawKey)
	if err != nil {
		return nil, err
	}

	cfg := &mailhideConfig{
		decoderURL: DefaultDecoderURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Mailhide{
		keys:       keys,
		block:      block,
		decoderURL: cfg.decoderURL,
	}, nil
}

// EncryptEmail runs the full pipeline on one address: PKCS#7-pad the
// raw bytes, CBC-encrypt under the zero IV, and encode the ciphertext
// with the URL-safe base64 alphabet (trailing '=' kept — the decoder
// receives the padded form).
func (m *Mailhide) EncryptEmail(email string) (string, error) {
	if email == "" {
		return "", ErrEmptyEmail
	}

	padded := mailcrypt.Pad([]byte(email))
	ciphertext, err := mailcrypt.EncryptCBC(m.block, mailcrypt.ZeroIV(), padded)
	if err != nil {
		return "", fmt.Errorf("encrypt email: %w", err)
	}
	return mailcrypt.ToBase64URL(ciphertext), nil
}

// DecodeURL returns the reveal URL for an address:
//
//	<decoderURL>k=<public key>&c=<encrypted address>
//
// Pure string composition, no network call. The public key and the
// ciphertext encoding are both already URL-safe, so no escaping is
// applied; escaping would change the URL the decoder was issued for.
func (m *Mailhide) DecodeURL(email string) (string, error) {
	encrypted, err := m.EncryptEmail(email)
	if err != nil {
		return "", err
	}
	return m.decoderURL + "k=" + m.keys.Public + "&c=" + encrypted, nil
}

// RevealLink returns an HTML anchor wrapping the reveal URL, with label
// as the link text. The URL and label are attribute/text escaped.
func (m *Mailhide) RevealLink(email, label string) (string, error) {
	u, err := m.DecodeURL(email)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(u), html.EscapeString(label)), nil
}

// RevealHTML renders an address in the service's customary obscured
// form: a truncated local part, an ellipsis link that opens the decoder
// in a popup, and the visible domain. For "bart@example.com" the output
// reads b<a ...>...</a>@example.com.
func (m *Mailhide) RevealHTML(email string) (string, error) {
	u, err := m.DecodeURL(email)
	if err != nil {
		return "", err
	}

	local, domain := splitAddress(email)
	esc := html.EscapeString(u)
	return fmt.Sprintf(`%s<a href="%s" onclick="window.open('%s', '', 'toolbar=0,scrollbars=0,location=0,statusbar=0,menubar=0,resizable=0,width=500,height=300'); return false;" title="Reveal this e-mail address">...</a>@%s`,
		html.EscapeString(truncateLocal(local)), esc, esc, html.EscapeString(domain)), nil
}

// splitAddress splits an address at its last '@'. An address without
// one is treated as all local part.
func splitAddress(email string) (local, domain string) {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return email, ""
	}
	return email[:i], email[i+1:]
}

// truncateLocal keeps the prefix of the local part the decoder page
// shows alongside the ellipsis: 1 character for short names, 3 for
// medium, 4 otherwise.
func truncateLocal(local string) string {
	keep := 4
	switch {
	case len(local) <= 4:
		keep = 1
	case len(local) <= 6:
		keep = 3
	}
	if keep > len(local) {
		keep = len(local)
	}
	return local[:keep]
}
