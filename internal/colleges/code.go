package colleges

import (
	"fmt"
	"strings"
	"unicode"
)

// campaignPrefix is the fixed campaign segment of every college code.
const campaignPrefix = "BYP-2026"

// Abbreviate builds the college abbreviation: the first letter of each
// whitespace-separated word, uppercased. Words that do not start with a
// letter contribute nothing, so a name with no letters yields "".
func Abbreviate(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// GenerateCode derives a unique college code of the form
// <ABBREV>-BYP-2026-<NN>, bumping the two-digit serial until the code is
// absent from existing. Terminates because existing is finite.
func GenerateCode(name string, existing []string) string {
	abbrev := Abbreviate(name)
	used := make(map[string]struct{}, len(existing))
	for _, code := range existing {
		used[code] = struct{}{}
	}
	for serial := 1; ; serial++ {
		code := fmt.Sprintf("%s-%s-%02d", abbrev, campaignPrefix, serial)
		if _, taken := used[code]; !taken {
			return code
		}
	}
}
