package mailcrypt

import (
	"bytes"
	"fmt"
)

// Pad appends PKCS#7 padding so that the result is a multiple of
// BlockSize. Input that is already block-aligned gets a full extra block
// of padding, so the padding can always be unambiguously removed.
func Pad(data []byte) []byte {
	padding := BlockSize - (len(data) % BlockSize)
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// Unpad removes PKCS#7 padding previously applied by Pad. It fails with
// ErrInvalidPadding when the trailing byte is outside 1..BlockSize or
// the trailing run of bytes is inconsistent with it.
func Unpad(data []byte) ([]byte, error) {
	length := len(data)
	if length == 0 || length%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			ErrInvalidPadding, length, BlockSize)
	}

	padding := int(data[length-1])
	if padding == 0 || padding > BlockSize {
		return nil, fmt.Errorf("%w: padding byte value %d", ErrInvalidPadding, padding)
	}

	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, fmt.Errorf("%w: malformed padding at byte %d", ErrInvalidPadding, i)
		}
	}
	return data[:length-padding], nil
}
