// Package bootstrap builds instructions modules for the CLI binaries,
// translating flag values into runtime configuration.
package bootstrap

import (
	"fmt"
	"strings"

	instructions "github.com/goliatone/go-instructions"
	"github.com/goliatone/go-instructions/internal/di"
	"github.com/goliatone/go-instructions/internal/logging"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// Options captures configuration for instructions CLI bootstraps.
type Options struct {
	CatalogDir      string
	Pattern         string
	Recursive       bool
	IncludeEmbedded bool
	ManifestPath    string
	OutputRoot      string
	EnableSync      bool
	EnableWatch     bool
	LogLevel        string
	LogFormat       string
	LoggerProvider  interfaces.LoggerProvider
}

// Module wraps the instructions module and the CLI logger.
type Module struct {
	Module *instructions.Module
	Logger interfaces.Logger
}

// BuildModule constructs an instructions module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := instructions.DefaultConfig()

	cfg.Catalog.BasePath = strings.TrimSpace(opts.CatalogDir)
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Catalog.Pattern = trimmed
	}
	cfg.Catalog.Recursive = opts.Recursive
	cfg.Catalog.IncludeEmbedded = opts.IncludeEmbedded

	if trimmed := strings.TrimSpace(opts.ManifestPath); trimmed != "" {
		cfg.Profiles.ManifestPath = trimmed
	} else {
		cfg.Features.Profiles = false
	}

	if trimmed := strings.TrimSpace(opts.OutputRoot); trimmed != "" {
		cfg.Targets.OutputRoot = trimmed
	}

	cfg.Features.Sync = opts.EnableSync && cfg.Features.Profiles
	cfg.Features.Watch = opts.EnableWatch && cfg.Features.Sync

	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Level = level
		if format := strings.TrimSpace(opts.LogFormat); format != "" {
			cfg.Logging.Format = format
		}
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := instructions.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise instructions module: %w", err)
	}

	logger := logging.ModuleLogger(module.LoggerProvider(), "instructions.cli")

	return &Module{
		Module: module,
		Logger: logger,
	}, nil
}

// SplitList parses a comma separated list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
