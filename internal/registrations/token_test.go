package registrations

import (
	"regexp"
	"testing"
)

var tokenPattern = regexp.MustCompile(`^BYP-\d+-\d{4}$`)

func TestTokenNumberFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		token := TokenNumber()
		if !tokenPattern.MatchString(token) {
			t.Fatalf("token %q does not match BYP-<digits>-<4 digits>", token)
		}
	}
}
