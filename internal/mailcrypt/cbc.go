package mailcrypt

import (
	"crypto/cipher"
	"fmt"
)

// EncryptCBC encrypts plaintext with CBC chaining: the first block is
// XORed with iv before encryption, each later block with the previous
// ciphertext block. The plaintext must already be padded to a block
// boundary; output length equals input length.
func EncryptCBC(block cipher.Block, iv, plaintext []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), BlockSize)
	}
	if len(plaintext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			ErrNotBlockAligned, len(plaintext), BlockSize)
	}

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)
	return ciphertext, nil
}

// DecryptCBC reverses EncryptCBC. The remote decoder performs the real
// decryption; this exists so round-trip tests can verify the pipeline
// without the remote service.
func DecryptCBC(block cipher.Block, iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), BlockSize)
	}
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			ErrNotBlockAligned, len(ciphertext), BlockSize)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return plaintext, nil
}
