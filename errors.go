package recaptcha

import (
	"errors"

	"github.com/captchakit/recaptcha-go/internal/mailcrypt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingPublicKey is returned when a key pair has no public key.
	ErrMissingPublicKey = errors.New("public key is required")

	// ErrMissingPrivateKey is returned when a key pair has no private key.
	ErrMissingPrivateKey = errors.New("private key is required")

	// ErrEmptyEmail is returned when Mailhide is asked to encrypt an
	// empty address.
	ErrEmptyEmail = errors.New("email address is empty")

	// ErrInvalidKeyLength is returned when a Mailhide private key does
	// not decode to exactly 16 bytes of AES key material.
	ErrInvalidKeyLength = mailcrypt.ErrInvalidKeyLength

	// ErrInvalidPadding is returned when PKCS#7 padding is malformed.
	// It can only surface from decryption round trips, never from
	// encrypting an address.
	ErrInvalidPadding = mailcrypt.ErrInvalidPadding
)
