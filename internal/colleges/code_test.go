package colleges

import (
	"fmt"
	"strings"
	"testing"
)

func TestGenerateCodeFirstSerial(t *testing.T) {
	code := GenerateCode("Delhi Public School", nil)
	if code != "DPS-BYP-2026-01" {
		t.Fatalf("got %q, want DPS-BYP-2026-01", code)
	}
}

func TestGenerateCodeBumpsSerial(t *testing.T) {
	code := GenerateCode("Delhi Public School", []string{"DPS-BYP-2026-01"})
	if code != "DPS-BYP-2026-02" {
		t.Fatalf("got %q, want DPS-BYP-2026-02", code)
	}
}

func TestGenerateCodeSkipsFirstN(t *testing.T) {
	var existing []string
	for i := 1; i <= 12; i++ {
		existing = append(existing, fmt.Sprintf("DPS-BYP-2026-%02d", i))
	}
	code := GenerateCode("Delhi Public School", existing)
	if code != "DPS-BYP-2026-13" {
		t.Fatalf("got %q, want DPS-BYP-2026-13", code)
	}
}

func TestGenerateCodeIgnoresOtherColleges(t *testing.T) {
	code := GenerateCode("Delhi Public School", []string{"SXC-BYP-2026-01", "SXC-BYP-2026-02"})
	if code != "DPS-BYP-2026-01" {
		t.Fatalf("got %q, want DPS-BYP-2026-01", code)
	}
}

func TestGenerateCodeEmptyListEndsInSerialOne(t *testing.T) {
	code := GenerateCode("St. Xavier's College Mumbai", nil)
	if code == "" {
		t.Fatal("expected non-empty code")
	}
	if !strings.HasSuffix(code, "-01") {
		t.Fatalf("got %q, want serial 01", code)
	}
}

func TestAbbreviate(t *testing.T) {
	cases := []struct{ name, want string }{
		{"Delhi Public School", "DPS"},
		{"st. xavier's college", "SXC"},
		{"  Hindu   College ", "HC"},
		{"123 456", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Abbreviate(tc.name); got != tc.want {
			t.Errorf("Abbreviate(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestGenerateCodeNoLetters(t *testing.T) {
	// Uniqueness still holds when the abbreviation is empty.
	first := GenerateCode("123", nil)
	second := GenerateCode("456", []string{first})
	if first == second {
		t.Fatalf("expected distinct codes, got %q twice", first)
	}
	if first != "-BYP-2026-01" || second != "-BYP-2026-02" {
		t.Fatalf("got %q and %q", first, second)
	}
}
