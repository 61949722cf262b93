package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sentsplit/internal/domain"
	"sentsplit/internal/service"
)

// MockSentenceService is a mock implementation of service.SentenceService.
type MockSentenceService struct {
	mock.Mock
}

func (m *MockSentenceService) Split(ctx context.Context, input service.SplitInput) (*domain.SentenceBatch, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SentenceBatch), args.Error(1)
}

func (m *MockSentenceService) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
