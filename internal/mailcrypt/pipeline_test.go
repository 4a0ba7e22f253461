package mailcrypt

import (
	"bytes"
	"crypto/rand"
	"testing"
)

// TestPipeline_RoundTrip runs the full outbound pipeline and its inverse
// for random keys and messages of every interesting length:
// Unpad(DecryptCBC(EncryptCBC(Pad(m)))) must restore m exactly.
func TestPipeline_RoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 15, 16, 17, 31, 32, 100, 1000} {
		rawKey := make([]byte, KeySize)
		if _, err := rand.Read(rawKey); err != nil {
			t.Fatal(err)
		}
		msg := make([]byte, size)
		if _, err := rand.Read(msg); err != nil {
			t.Fatal(err)
		}

		block, err := ExpandKey(rawKey)
		if err != nil {
			t.Fatalf("ExpandKey() error = %v", err)
		}

		ciphertext, err := EncryptCBC(block, ZeroIV(), Pad(msg))
		if err != nil {
			t.Fatalf("EncryptCBC() error = %v", err)
		}

		encoded := ToBase64URL(ciphertext)
		decoded, err := FromBase64URL(encoded)
		if err != nil {
			t.Fatalf("FromBase64URL() error = %v", err)
		}

		padded, err := DecryptCBC(block, ZeroIV(), decoded)
		if err != nil {
			t.Fatalf("DecryptCBC() error = %v", err)
		}
		got, err := Unpad(padded)
		if err != nil {
			t.Fatalf("Unpad() error = %v", err)
		}

		if !bytes.Equal(got, msg) {
			t.Errorf("round trip for %d-byte message did not restore the input", size)
		}
	}
}
