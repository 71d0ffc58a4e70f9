package composecmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-instructions/internal/commands"
	"github.com/goliatone/go-instructions/internal/logging"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

const (
	composeOperation = "compose.profile"
	syncOperation    = "targets.sync"
)

// ErrSyncFeatureDisabled is returned when the sync feature flag is disabled at runtime.
var ErrSyncFeatureDisabled = errors.New("compose command: sync disabled")

var (
	_ command.Commander[ComposeProfileCommand] = (*ComposeProfileHandler)(nil)
	_ command.Commander[SyncTargetsCommand]    = (*SyncTargetsHandler)(nil)
)

// ComposeProfileHandler composes a single manifest profile via the shared
// command handler foundation.
type ComposeProfileHandler struct {
	inner *commands.Handler[ComposeProfileCommand]
}

// NewComposeProfileHandler creates a handler bound to the supplied composer
// and profile services.
func NewComposeProfileHandler(composer interfaces.ComposerService, profiles interfaces.ProfileService, logger interfaces.Logger, opts ...commands.HandlerOption[ComposeProfileCommand]) *ComposeProfileHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ComposeProfileCommand) error {
		profile, err := profiles.Profile(msg.Profile)
		if err != nil {
			return err
		}

		req := profile.Request()
		if msg.SeparatorSet {
			req = req.WithSeparator(msg.Separator)
		}

		doc, err := composer.Compose(ctx, req)
		if err != nil {
			return err
		}

		if msg.OutputPath != "" {
			if dir := filepath.Dir(msg.OutputPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("compose command: ensure dir %s: %w", dir, err)
				}
			}
			if err := os.WriteFile(msg.OutputPath, doc.Content, 0o644); err != nil {
				return fmt.Errorf("compose command: write %s: %w", msg.OutputPath, err)
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"profile":      msg.Profile,
			"module_count": len(doc.Modules),
			"bytes":        len(doc.Content),
			"persisted":    msg.OutputPath != "",
		}).Info("compose.command.profile.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ComposeProfileCommand]{
		commands.WithLogger[ComposeProfileCommand](baseLogger),
		commands.WithOperation[ComposeProfileCommand](composeOperation),
		commands.WithMessageFields(func(msg ComposeProfileCommand) map[string]any {
			fields := map[string]any{
				"profile": msg.Profile,
			}
			if msg.OutputPath != "" {
				fields["output_path"] = msg.OutputPath
			}
			if msg.SeparatorSet {
				fields["separator_override"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ComposeProfileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ComposeProfileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ComposeProfileCommand].
func (h *ComposeProfileHandler) Execute(ctx context.Context, msg ComposeProfileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SyncTargetsHandler orchestrates target sync runs via the shared command
// handler foundation.
type SyncTargetsHandler struct {
	inner *commands.Handler[SyncTargetsCommand]
}

// NewSyncTargetsHandler creates a handler bound to the supplied sync service.
func NewSyncTargetsHandler(syncSvc interfaces.SyncService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[SyncTargetsCommand]) *SyncTargetsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SyncTargetsCommand) error {
		if !gates.syncEnabled() {
			return ErrSyncFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := syncSvc.Sync(ctx, interfaces.SyncRequest{
			Profiles: msg.Profiles,
			Force:    msg.Force,
			DryRun:   msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"run_id":       result.RunID,
				"output_count": len(result.Outputs),
				"written":      result.Written(),
				"dry_run":      msg.DryRun,
				"force":        msg.Force,
			}).Info("compose.command.sync_targets.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncTargetsCommand]{
		commands.WithLogger[SyncTargetsCommand](baseLogger),
		commands.WithOperation[SyncTargetsCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncTargetsCommand) map[string]any {
			fields := map[string]any{}
			if len(msg.Profiles) > 0 {
				fields["profiles"] = msg.Profiles
			}
			if msg.Force {
				fields["force"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncTargetsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncTargetsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncTargetsCommand].
func (h *SyncTargetsHandler) Execute(ctx context.Context, msg SyncTargetsCommand) error {
	return h.inner.Execute(ctx, msg)
}
