package recaptcha

import (
	"fmt"
	"net/url"
)

// Widget URLs. Both take the public key as the k query parameter.
const (
	// ChallengeScriptURL serves the widget's JavaScript.
	ChallengeScriptURL = "http://www.google.com/recaptcha/api/challenge"

	// ChallengeNoScriptURL serves the iframe fallback for clients
	// without JavaScript.
	ChallengeNoScriptURL = "http://www.google.com/recaptcha/api/noscript"
)

// ChallengeScript renders the script tag that loads the CAPTCHA widget
// for the given public key.
func ChallengeScript(publicKey string) string {
	return fmt.Sprintf(
		`<script type="text/javascript" src="%s?k=%s"></script>`,
		ChallengeScriptURL, url.QueryEscape(publicKey))
}

// ChallengeNoScript renders the noscript fallback: an iframe plus the
// manual challenge/response form fields.
func ChallengeNoScript(publicKey string) string {
	return fmt.Sprintf(`<noscript>
	<iframe src="%s?k=%s" height="300" width="500" frameborder="0"></iframe><br/>
	<textarea name="recaptcha_challenge_field" rows="3" cols="40"></textarea>
	<input type="hidden" name="recaptcha_response_field" value="manual_challenge"/>
</noscript>`,
		ChallengeNoScriptURL, url.QueryEscape(publicKey))
}

// ChallengeHTML renders the complete widget snippet for embedding in a
// form: the script tag followed by the noscript fallback. The form that
// contains it will post recaptcha_challenge_field and
// recaptcha_response_field, which are the two values [Client.Verify]
// expects.
func ChallengeHTML(publicKey string) string {
	return ChallengeScript(publicKey) + "\n" + ChallengeNoScript(publicKey)
}
