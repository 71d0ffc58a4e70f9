package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// ErrCatalogBasePathRequired indicates the catalog cannot be built without a
// filesystem root unless it runs embedded-only.
var ErrCatalogBasePathRequired = errors.New("instructions config: catalog base path is required unless embedded-only")

// ErrWatchRequiresSync ensures the watcher only runs when sync is enabled.
var ErrWatchRequiresSync = errors.New("instructions config: watch feature requires sync to be enabled")

// ErrCommandsCronRequiresSync ensures automatic cron wiring only runs when sync is enabled.
var ErrCommandsCronRequiresSync = errors.New("instructions config: command cron auto-registration requires sync to be enabled")

var ErrManifestPathRequired = errors.New("instructions config: profile manifest path is required when profiles are enabled")
var ErrLoggingProviderRequired = errors.New("instructions config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("instructions config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("instructions config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("instructions config: logging format is invalid")
var ErrWatchDebounceInvalid = errors.New("instructions config: watch debounce must be zero or positive")

// Config aggregates feature flags and per-module settings for the toolkit.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Catalog  CatalogConfig
	Composer ComposerConfig
	Profiles ProfilesConfig
	Targets  TargetsConfig
	Watch    WatchConfig
	Render   RenderConfig
	Commands CommandsConfig
	Logging  LoggingConfig
	Features Features
}

// CatalogConfig captures filesystem behaviour for module discovery.
type CatalogConfig struct {
	// BasePath is the catalog root holding the category directories.
	BasePath string
	// Pattern filters module filenames; defaults to "*.md".
	Pattern string
	// Recursive walks category subdirectories when true.
	Recursive bool
	// IncludeEmbedded loads the starter modules shipped with the toolkit.
	// Filesystem modules with the same reference shadow embedded ones.
	IncludeEmbedded bool
}

// ComposerConfig captures composition defaults.
type ComposerConfig struct {
	// Separator overrides interfaces.DefaultSeparator when SeparatorSet is true.
	Separator    string
	SeparatorSet bool
}

// ProfilesConfig locates the profile manifest.
type ProfilesConfig struct {
	// ManifestPath points at the instructions.yaml manifest. Relative paths
	// resolve against the working directory.
	ManifestPath string
}

// TargetsConfig captures output behaviour for sync runs.
type TargetsConfig struct {
	// OutputRoot is the directory target paths resolve against.
	OutputRoot string
}

// WatchConfig captures file-watcher behaviour.
type WatchConfig struct {
	// Debounce is the quiet period after the last catalog edit before a
	// sync runs.
	Debounce time.Duration
}

// RenderConfig mirrors interfaces.RenderOptions for runtime configuration.
type RenderConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled          bool
	AutoRegisterCron bool
	SyncCron         string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Profiles bool
	Sync     bool
	Watch    bool
	Render   bool
	Logger   bool
}

// DefaultConfig returns opinionated defaults: embedded starter modules plus a
// conventional ./instructions catalog, manifest alongside it, outputs in the
// working directory.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Catalog: CatalogConfig{
			BasePath:        "instructions",
			Pattern:         "*.md",
			Recursive:       true,
			IncludeEmbedded: true,
		},
		Composer: ComposerConfig{},
		Profiles: ProfilesConfig{
			ManifestPath: "instructions.yaml",
		},
		Targets: TargetsConfig{
			OutputRoot: ".",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Render: RenderConfig{},
		Features: Features{
			Profiles: true,
			Sync:     true,
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// SeparatorOrDefault resolves the configured composition separator, falling
// back to the conventional default.
func (c ComposerConfig) SeparatorOrDefault() string {
	if c.SeparatorSet {
		return c.Separator
	}
	return interfaces.DefaultSeparator
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Catalog.BasePath) == "" && !cfg.Catalog.IncludeEmbedded {
		return ErrCatalogBasePathRequired
	}
	if cfg.Features.Watch && !cfg.Features.Sync {
		return ErrWatchRequiresSync
	}
	if cfg.Commands.AutoRegisterCron && !cfg.Features.Sync {
		return ErrCommandsCronRequiresSync
	}
	if cfg.Features.Profiles {
		if strings.TrimSpace(cfg.Profiles.ManifestPath) == "" {
			return ErrManifestPathRequired
		}
	}
	if cfg.Watch.Debounce < 0 {
		return ErrWatchDebounceInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
