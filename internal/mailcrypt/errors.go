package mailcrypt

import "errors"

var (
	// ErrInvalidKeyLength is returned when a private key does not decode
	// to exactly 16 bytes, or is not valid hex at all.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidPadding is returned when PKCS#7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid PKCS#7 padding")

	// ErrInvalidIVSize is returned when the IV is not one block long.
	ErrInvalidIVSize = errors.New("invalid IV size")

	// ErrNotBlockAligned is returned when CBC input is not a multiple of
	// the block size. Callers must pad before encrypting.
	ErrNotBlockAligned = errors.New("input not block aligned")
)
