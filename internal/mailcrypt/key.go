package mailcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
)

// DecodeKey decodes a hex-encoded Mailhide private key into raw AES key
// bytes. The key must be exactly 32 hex characters (16 bytes decoded);
// anything else fails with ErrInvalidKeyLength before any encryption can
// happen.
func DecodeKey(hexKey string) ([]byte, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not valid hex: %v", ErrInvalidKeyLength, err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(raw), KeySize)
	}
	return raw, nil
}

// ExpandKey runs AES key expansion on a raw 16-byte key. The returned
// block is usable for both encryption and decryption, which keeps the
// pipeline verifiable with local round trips.
func ExpandKey(rawKey []byte) (cipher.Block, error) {
	if len(rawKey) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(rawKey), KeySize)
	}
	block, err := aes.NewCipher(rawKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	return block, nil
}
