package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-instructions/internal/runtimeconfig"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

func TestConfigValidate_DefaultsAreValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_AllowsEmbeddedOnlyCatalog(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Catalog.BasePath = ""
	cfg.Catalog.IncludeEmbedded = true

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresBasePathWithoutEmbedded(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Catalog.BasePath = " "
	cfg.Catalog.IncludeEmbedded = false

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrCatalogBasePathRequired) {
		t.Fatalf("expected ErrCatalogBasePathRequired, got %v", err)
	}
}

func TestConfigValidate_WatchRequiresSync(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Watch = true
	cfg.Features.Sync = false

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrWatchRequiresSync) {
		t.Fatalf("expected ErrWatchRequiresSync, got %v", err)
	}
}

func TestConfigValidate_CronRequiresSync(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Commands.AutoRegisterCron = true
	cfg.Features.Sync = false

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrCommandsCronRequiresSync) {
		t.Fatalf("expected ErrCommandsCronRequiresSync, got %v", err)
	}
}

func TestConfigValidate_RequiresManifestPathForProfiles(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Profiles = true
	cfg.Profiles.ManifestPath = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrManifestPathRequired) {
		t.Fatalf("expected ErrManifestPathRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeWatchDebounce(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Watch.Debounce = -1

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrWatchDebounceInvalid) {
		t.Fatalf("expected ErrWatchDebounceInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestSeparatorOrDefault(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if got := cfg.Composer.SeparatorOrDefault(); got != interfaces.DefaultSeparator {
		t.Fatalf("expected default separator, got %q", got)
	}

	cfg.Composer.Separator = ""
	cfg.Composer.SeparatorSet = true
	if got := cfg.Composer.SeparatorOrDefault(); got != "" {
		t.Fatalf("expected explicit empty separator, got %q", got)
	}
}
