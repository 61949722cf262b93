package port

import "context"

// SentenceSplitter segments decoded text into trimmed, non-empty sentences
// in order of appearance.
type SentenceSplitter interface {
	Split(ctx context.Context, text string) ([]string, error)
	// Name identifies the engine; it is part of cache keys.
	Name() string
	// Ready reports whether the splitter can serve requests, initializing
	// any backing model on first call.
	Ready(ctx context.Context) error
}
