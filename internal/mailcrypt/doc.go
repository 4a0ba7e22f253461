// Package mailcrypt implements the cryptographic pipeline of the Mailhide
// protocol: AES-128-CBC encryption under a fixed all-zero IV, PKCS#7
// padding, and URL-safe base64 encoding of the ciphertext.
//
// # Protocol constraints
//
// The remote decoding service fixes every parameter of this pipeline.
// The key is always 16 bytes (decoded from a 32-character hex string),
// the IV is always sixteen zero bytes, padding is always PKCS#7, and the
// ciphertext is encoded with the URL-safe base64 alphabet with trailing
// '=' padding kept in place. None of these are tunable: any deviation
// produces a URL the decoder silently fails to open, with no way to
// detect the mismatch locally.
//
// Because the IV is fixed, encryption is deterministic — the same address
// under the same key always yields the same ciphertext. This offers no
// confidentiality against comparison attacks and is exactly what the
// remote decoder expects.
//
// Decryption is implemented only so the pipeline can be verified with
// local round-trip tests; the decoding service performs the real
// decryption.
package mailcrypt
