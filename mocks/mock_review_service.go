package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ralphreevencarandang/contract-reader/internal/domain"
	"github.com/ralphreevencarandang/contract-reader/internal/service"
)

// MockReviewService is a mock implementation of service.ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Review(ctx context.Context, input service.ReviewUploadInput) (*domain.ReviewResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewResult), args.Error(1)
}
