package port

import "context"

// SentenceCache stores split results keyed by engine and document text.
// Implementations treat backend failures as misses.
type SentenceCache interface {
	Get(ctx context.Context, engine, text string) ([]string, bool)
	Set(ctx context.Context, engine, text string, sentences []string)
	// GetOrCompute returns the cached value or runs compute once per key
	// across concurrent callers. The bool reports a cache hit.
	GetOrCompute(ctx context.Context, engine, text string, compute func() ([]string, error)) ([]string, bool, error)
	Ping(ctx context.Context) error
}
