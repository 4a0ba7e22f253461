// Package recaptcha is a client for the reCAPTCHA service. It covers the
// two independent protocols the service exposes to site owners:
//
//   - Challenge verification: submitting a user's solved challenge to the
//     verification endpoint and interpreting the pass/fail result.
//
//   - Mailhide: reversibly obscuring an email address by encrypting it
//     and embedding the ciphertext in a URL that the service's decoding
//     page opens after the visitor solves a CAPTCHA.
//
// # Verification
//
// Create a [Client] with the key pair issued for your site, then call
// [Client.Verify] with the challenge and response fields posted by the
// CAPTCHA widget:
//
//	client, err := recaptcha.New(recaptcha.KeyPair{
//	    Public:  os.Getenv("RECAPTCHA_PUBLIC_KEY"),
//	    Private: os.Getenv("RECAPTCHA_PRIVATE_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := client.Verify(ctx, remoteIP, challenge, response)
//	if result.Valid {
//	    // human
//	}
//
// Verify never returns an error: transport and format failures are folded
// into the boolean result with a well-known [VerificationResult.ErrorCode],
// so a network outage degrades to "not verified" instead of a fault.
//
// [ChallengeHTML] renders the widget markup for the form that produces
// the challenge and response fields.
//
// # Mailhide
//
// Mailhide uses its own key pair, issued separately from the verification
// pair; the two are never interchangeable. The private key is a
// 32-character hex string that decodes to a 16-byte AES key.
//
//	mh, err := recaptcha.NewMailhide(recaptcha.KeyPair{
//	    Public:  mailhidePublic,
//	    Private: mailhidePrivateHex,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	url, err := mh.DecodeURL("bart@example.com")
//	html, err := mh.RevealHTML("bart@example.com")
//
// The encryption pipeline (AES-128-CBC under a fixed zero IV, PKCS#7
// padding, URL-safe base64 with '=' padding preserved) is dictated
// bit-for-bit by the remote decoding service. It is deterministic: the
// same address under the same key always produces the same URL.
//
// # Configuration
//
// Both clients take explicit configuration at construction — key pairs as
// arguments, endpoint URLs via functional options ([WithVerifyEndpoint],
// [WithDecoderURL]). There is no process-wide state; constructed clients
// are immutable and safe for concurrent use.
package recaptcha
