package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSentenceSplitter is a mock implementation of port.SentenceSplitter.
type MockSentenceSplitter struct {
	mock.Mock
}

func (m *MockSentenceSplitter) Split(ctx context.Context, text string) ([]string, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSentenceSplitter) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSentenceSplitter) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
