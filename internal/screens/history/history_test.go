package history

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short unchanged", "Breaking news", 48, "Breaking news"},
		{"exact length unchanged", "abcd", 4, "abcd"},
		{"ascii cut", "abcdef", 4, "abcd…"},
		{"multibyte cut on rune boundary", "日本語のニュース記事", 4, "日本語の…"},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateRunes(%q, %d) produced invalid UTF-8", tt.in, tt.n)
			}
		})
	}
}

func TestTruncateRunes_NeverSplitsRune(t *testing.T) {
	// A title made entirely of 3-byte runes; any byte-based cut at 48
	// would land mid-rune.
	title := strings.Repeat("記", 60)
	got := truncateRunes(title, 48)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated title is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 49 {
		t.Errorf("rune count = %d, want 49 (48 kept + ellipsis)", n)
	}
}
