package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ralphreevencarandang/contract-reader/internal/config"
	"github.com/ralphreevencarandang/contract-reader/internal/domain"
	"github.com/ralphreevencarandang/contract-reader/internal/parser"
	"github.com/ralphreevencarandang/contract-reader/internal/port"
)

// ReviewUploadInput is the DTO for contract review requests.
type ReviewUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ReviewService defines the contract review contract.
type ReviewService interface {
	Review(ctx context.Context, input ReviewUploadInput) (*domain.ReviewResult, error)
}

// Extractor is the slice of the dispatcher the service depends on.
type Extractor interface {
	Extract(ctx context.Context, data []byte, extType domain.FileType) (string, error)
}

type reviewService struct {
	extractor Extractor
	parser    port.ReviewParser
	cfg       *config.UploadConfig
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(ext Extractor, p port.ReviewParser, cfg *config.UploadConfig) ReviewService {
	return &reviewService{
		extractor: ext,
		parser:    p,
		cfg:       cfg,
	}
}

func (s *reviewService) Review(ctx context.Context, input ReviewUploadInput) (*domain.ReviewResult, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	log.Printf("reviewService.Review: reviewing %s (%s, %d bytes)",
		input.Header.Filename, fileType, len(data))

	text, err := s.extractor.Extract(ctx, data, fileType)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if len([]rune(text)) < s.cfg.MinTextChars {
		return nil, domain.ErrTextTooShort
	}

	text = truncateRunes(text, s.cfg.MaxTextChars)

	out, err := s.parser.Review(ctx, port.ReviewInput{
		Text:       text,
		SourceName: input.Header.Filename,
	})
	if err != nil {
		return nil, fmt.Errorf("reviewing contract: %w", err)
	}

	result := parser.NormalizeReview(out.Raw)
	result.RawText = text

	log.Printf("reviewService.Review: %s reviewed by %s (%d risks, %d counters)",
		input.Header.Filename, out.ModelUsed, len(result.Risks), len(result.Counters))

	return result, nil
}

// truncateRunes cuts text to at most max characters without splitting a
// multi-byte character.
func truncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
