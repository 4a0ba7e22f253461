package mailcrypt

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"
)

func TestToBase64URL_Alphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		data := make([]byte, i)
		if _, err := rand.Read(data); err != nil {
			t.Fatal(err)
		}

		got := ToBase64URL(data)
		if strings.ContainsAny(got, "+/") {
			t.Fatalf("output %q contains a standard-alphabet character", got)
		}

		// Every '-'/'_' must correspond to a '+'/'/' in the standard
		// encoding of the same input; everything else is unchanged.
		std := base64.StdEncoding.EncodeToString(data)
		want := strings.NewReplacer("+", "-", "/", "_").Replace(std)
		if got != want {
			t.Fatalf("ToBase64URL(%x) = %q, want %q", data, got, want)
		}
	}
}

func TestToBase64URL_PreservesPadding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg=="},
	}

	for _, tt := range tests {
		if got := ToBase64URL([]byte(tt.input)); got != tt.want {
			t.Errorf("ToBase64URL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFromBase64URL_RoundTrip(t *testing.T) {
	data := make([]byte, 37)
	if _, err := rand.Read(data); err != nil {
		t.Fatal(err)
	}

	got, err := FromBase64URL(ToBase64URL(data))
	if err != nil {
		t.Fatalf("FromBase64URL() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("round trip = %x, want %x", got, data)
	}
}
