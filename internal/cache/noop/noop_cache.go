package noop

import (
	"context"

	"sentsplit/internal/port"
)

type noopCache struct{}

// NewNoopCache creates a SentenceCache that never stores anything.
func NewNoopCache() port.SentenceCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, string) ([]string, bool) { return nil, false }

func (noopCache) Set(context.Context, string, string, []string) {}

func (noopCache) GetOrCompute(_ context.Context, _, _ string, compute func() ([]string, error)) ([]string, bool, error) {
	sentences, err := compute()
	return sentences, false, err
}

func (noopCache) Ping(context.Context) error { return nil }
