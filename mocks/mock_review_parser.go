package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ralphreevencarandang/contract-reader/internal/port"
)

// MockReviewParser is a mock implementation of port.ReviewParser.
type MockReviewParser struct {
	mock.Mock
}

func (m *MockReviewParser) Review(ctx context.Context, input port.ReviewInput) (*port.ReviewOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ReviewOutput), args.Error(1)
}
