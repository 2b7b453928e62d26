package parser

import (
	"fmt"

	"github.com/ralphreevencarandang/contract-reader/internal/config"
	"github.com/ralphreevencarandang/contract-reader/internal/port"
)

// ProviderFactory is a function that creates a ReviewParser from a provider config.
type ProviderFactory func(cfg *config.ParserProviderConfig) (port.ReviewParser, error)

// registry of review provider factories, populated explicitly via
// RegisterProvider at startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a review provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewParser creates a ReviewParser from a provider config using the registered factory.
func NewParser(cfg *config.ParserProviderConfig) (port.ReviewParser, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown review provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
