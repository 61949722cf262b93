package splitter

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"sentsplit/internal/domain"
)

// boundary matches a sentence-ending mark and the whitespace run after it.
// Only the whitespace is dropped when splitting; the mark stays with the
// preceding sentence. RE2 has no lookbehind, so the cut is made at loc[0]+1.
// The whitespace set matches isSpace, including the U+001C..U+001F
// information separators.
var boundary = regexp.MustCompile(`[.!?][\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+`)

// RegexSplitter splits on '.', '!' or '?' followed by whitespace.
// It is stateless and safe for concurrent use.
type RegexSplitter struct{}

// NewRegexSplitter creates a RegexSplitter.
func NewRegexSplitter() *RegexSplitter {
	return &RegexSplitter{}
}

func (s *RegexSplitter) Name() string { return string(domain.EngineRegex) }

func (s *RegexSplitter) Ready(_ context.Context) error { return nil }

func (s *RegexSplitter) Split(_ context.Context, text string) ([]string, error) {
	return SplitText(text), nil
}

// SplitText is the pure regex split. It never returns nil.
func SplitText(text string) []string {
	out := make([]string, 0)
	start := 0
	for _, loc := range boundary.FindAllStringIndex(text, -1) {
		out = appendTrimmed(out, text[start:loc[0]+1])
		start = loc[1]
	}
	return appendTrimmed(out, text[start:])
}

// isSpace is unicode.IsSpace plus the U+001C..U+001F separators.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func appendTrimmed(out []string, fragment string) []string {
	if s := strings.TrimFunc(fragment, isSpace); s != "" {
		out = append(out, s)
	}
	return out
}
