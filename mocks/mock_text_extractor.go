package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ralphreevencarandang/contract-reader/internal/domain"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

// MockExtractorDispatcher is a mock implementation of service.Extractor.
type MockExtractorDispatcher struct {
	mock.Mock
}

func (m *MockExtractorDispatcher) Extract(ctx context.Context, data []byte, extType domain.FileType) (string, error) {
	args := m.Called(ctx, data, extType)
	return args.String(0), args.Error(1)
}
