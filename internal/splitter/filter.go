package splitter

import (
	"strings"

	"sentsplit/internal/domain"
)

// IsMathTagged reports whether s contains <math> or </math> in any letter
// case. The test is a plain substring match, so "<math" without '>' does
// not count.
func IsMathTagged(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, domain.MathOpenTag) || strings.Contains(lower, domain.MathCloseTag)
}

// FilterMath keeps only math-tagged sentences, preserving order.
func FilterMath(sentences []string) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if IsMathTagged(s) {
			out = append(out, s)
		}
	}
	return out
}
