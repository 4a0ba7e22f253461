package mailcrypt

import (
	"encoding/base64"
)

// ToBase64URL encodes bytes with the URL-safe base64 alphabet
// ('+' becomes '-', '/' becomes '_'), no line breaks, trailing '='
// padding kept. The decoding service receives the padded form; stripping
// the '=' characters would hand it a URL it cannot open.
func ToBase64URL(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

// FromBase64URL decodes a padded URL-safe base64 string. Used only by
// round-trip tests; the remote decoder consumes the real output.
func FromBase64URL(s string) ([]byte, error) {
	return base64.URLEncoding.DecodeString(s)
}
