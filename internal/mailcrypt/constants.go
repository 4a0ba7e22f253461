package mailcrypt

const (
	// KeySize is the Mailhide AES key size in bytes (AES-128).
	KeySize = 16

	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// HexKeySize is the length of a hex-encoded Mailhide private key.
	HexKeySize = 2 * KeySize
)

// ZeroIV returns the fixed all-zero IV the Mailhide decoder expects.
// A fresh slice is returned so callers cannot clobber a shared one.
func ZeroIV() []byte {
	return make([]byte, BlockSize)
}
