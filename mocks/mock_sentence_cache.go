package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSentenceCache is a mock implementation of port.SentenceCache.
// GetOrCompute runs compute when the configured return is a miss with no
// sentences, so tests can exercise the splitter behind the cache.
type MockSentenceCache struct {
	mock.Mock
}

func (m *MockSentenceCache) Get(ctx context.Context, engine, text string) ([]string, bool) {
	args := m.Called(ctx, engine, text)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func (m *MockSentenceCache) Set(ctx context.Context, engine, text string, sentences []string) {
	m.Called(ctx, engine, text, sentences)
}

func (m *MockSentenceCache) GetOrCompute(ctx context.Context, engine, text string, compute func() ([]string, error)) ([]string, bool, error) {
	args := m.Called(ctx, engine, text, compute)
	if args.Get(0) == nil && !args.Bool(1) && args.Error(2) == nil {
		sentences, err := compute()
		return sentences, false, err
	}
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]string), args.Bool(1), args.Error(2)
}

func (m *MockSentenceCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
