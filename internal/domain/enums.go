package domain

// SplitterEngine names a sentence segmentation strategy.
type SplitterEngine string

const (
	EngineRegex SplitterEngine = "regex"
	EnginePunkt SplitterEngine = "punkt"
)

// MathOpenTag and MathCloseTag are matched case-insensitively against the
// lowercase form of a sentence.
const (
	MathOpenTag  = "<math>"
	MathCloseTag = "</math>"
)
