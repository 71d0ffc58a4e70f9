package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-instructions/pkg/interfaces"
)

const (
	rootModule     = "instructions"
	catalogModule  = "instructions.catalog"
	composerModule = "instructions.composer"
	profilesModule = "instructions.profiles"
	targetsModule  = "instructions.targets"
)

const (
	fieldModuleRef  = "module_ref"
	fieldCategory   = "category"
	fieldSyncAction = "sync_action"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for catalog discovery.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// ComposerLogger returns the logger namespace reserved for composition.
func ComposerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, composerModule)
}

// ProfilesLogger returns the logger namespace reserved for the profile manifest.
func ProfilesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, profilesModule)
}

// TargetsLogger returns the logger namespace reserved for sync workflows.
func TargetsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, targetsModule)
}

// WithModuleContext enriches the provided logger with common instruction
// module fields such as reference, category, and sync action. Empty values
// are ignored.
func WithModuleContext(logger interfaces.Logger, ref, category, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(ref); trimmed != "" {
		fields[fieldModuleRef] = trimmed
	}
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		fields[fieldCategory] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldSyncAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
