package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/ralphreevencarandang/contract-reader/internal/config"
	"github.com/ralphreevencarandang/contract-reader/internal/domain"
	"github.com/ralphreevencarandang/contract-reader/internal/extractor"
	docxextractor "github.com/ralphreevencarandang/contract-reader/internal/extractor/docx"
	pdfextractor "github.com/ralphreevencarandang/contract-reader/internal/extractor/pdf"
	rtfextractor "github.com/ralphreevencarandang/contract-reader/internal/extractor/rtf"
	"github.com/ralphreevencarandang/contract-reader/internal/handler"
	"github.com/ralphreevencarandang/contract-reader/internal/parser"
	"github.com/ralphreevencarandang/contract-reader/internal/parser/claude"
	"github.com/ralphreevencarandang/contract-reader/internal/parser/openai"
	"github.com/ralphreevencarandang/contract-reader/internal/port"
	"github.com/ralphreevencarandang/contract-reader/internal/router"
	"github.com/ralphreevencarandang/contract-reader/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registerProviders()

	// Initialize extraction
	dispatcher := extractor.NewDispatcher(
		pdfextractor.NewExtractor(),
		docxextractor.NewExtractor(),
		rtfextractor.NewExtractor(),
	)

	// Initialize review parser chain
	reviewParser, configured, err := buildReviewParser(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to initialize review parser: %w", err)
	}

	// Initialize services
	reviewSvc := service.NewReviewService(dispatcher, reviewParser, &cfg.Upload)

	// Initialize handlers
	reviewH := handler.NewReviewHandler(reviewSvc)
	healthH := handler.NewHealthHandler(configured)

	// Setup router
	r := router.Setup(cfg, reviewH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func registerProviders() {
	parser.RegisterProvider("openai", func(cfg *config.ParserProviderConfig) (port.ReviewParser, error) {
		return openai.NewParser(cfg), nil
	})
	parser.RegisterProvider("claude", func(cfg *config.ParserProviderConfig) (port.ReviewParser, error) {
		return claude.NewParser(cfg), nil
	})
}

// buildReviewParser assembles the provider fallback chain from config. The
// second return reports whether at least one provider has an API key, which
// readiness checks surface.
func buildReviewParser(cfg *config.ParserConfig) (port.ReviewParser, bool, error) {
	var parsers []port.ReviewParser
	var names []string
	configured := false

	for _, pc := range []*config.ParserProviderConfig{cfg.PrimaryConfig(), cfg.SecondaryConfig()} {
		if pc == nil || pc.Provider == "" {
			continue
		}
		p, err := parser.NewParser(pc)
		if err != nil {
			return nil, false, err
		}
		parsers = append(parsers, p)
		names = append(names, pc.Provider)
		if pc.APIKey != "" {
			configured = true
		}
	}

	if len(parsers) == 0 {
		return nil, false, domain.ErrNoParserConfigured
	}
	if len(parsers) == 1 {
		return parsers[0], configured, nil
	}
	return parser.NewFallbackParser(parsers, names), configured, nil
}
