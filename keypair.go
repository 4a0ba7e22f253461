package recaptcha

// KeyPair holds the public and private keys issued by the service for
// one API. Verification and Mailhide use independent pairs; a pair
// issued for one is never valid for the other.
//
// For Mailhide the private key is a 32-character hex string encoding a
// 16-byte AES key. For verification both keys are opaque tokens.
type KeyPair struct {
	Public  string
	Private string
}
