package recaptcha

import (
	"strings"
	"testing"
)

func TestChallengeScript(t *testing.T) {
	got := ChallengeScript("my-public-key")

	if !strings.Contains(got, ChallengeScriptURL+"?k=my-public-key") {
		t.Errorf("ChallengeScript() = %q, missing challenge URL", got)
	}
	if !strings.HasPrefix(got, "<script") || !strings.HasSuffix(got, "</script>") {
		t.Errorf("ChallengeScript() = %q, not a script tag", got)
	}
}

func TestChallengeNoScript(t *testing.T) {
	got := ChallengeNoScript("my-public-key")

	if !strings.Contains(got, ChallengeNoScriptURL+"?k=my-public-key") {
		t.Errorf("ChallengeNoScript() = %q, missing noscript URL", got)
	}
	for _, field := range []string{"recaptcha_challenge_field", "recaptcha_response_field", "manual_challenge"} {
		if !strings.Contains(got, field) {
			t.Errorf("ChallengeNoScript() missing %q", field)
		}
	}
}

func TestChallengeHTML_EscapesKey(t *testing.T) {
	got := ChallengeHTML("key&with=specials")

	if strings.Contains(got, "k=key&with=specials") {
		t.Errorf("public key not escaped: %q", got)
	}
	if !strings.Contains(got, "k=key%26with%3Dspecials") {
		t.Errorf("ChallengeHTML() = %q, want escaped key", got)
	}
}

func TestChallengeHTML_BothSlots(t *testing.T) {
	got := ChallengeHTML("my-public-key")

	if strings.Count(got, "k=my-public-key") != 2 {
		t.Errorf("ChallengeHTML() should substitute the key into both the script and noscript slots:\n%s", got)
	}
}
