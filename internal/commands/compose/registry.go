package composecmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-instructions/internal/commands"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the compose command handlers produced by RegisterComposeCommands.
type HandlerSet struct {
	Compose *ComposeProfileHandler
	Sync    *SyncTargetsHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	composeHandlerOpts []commands.HandlerOption[ComposeProfileCommand]
	syncHandlerOpts    []commands.HandlerOption[SyncTargetsCommand]
}

// WithComposeHandlerOptions forwards options to the ComposeProfileHandler constructor.
func WithComposeHandlerOptions(opts ...commands.HandlerOption[ComposeProfileCommand]) Option {
	return func(cfg *options) {
		cfg.composeHandlerOpts = append(cfg.composeHandlerOpts, opts...)
	}
}

// WithSyncHandlerOptions forwards options to the SyncTargetsHandler constructor.
func WithSyncHandlerOptions(opts ...commands.HandlerOption[SyncTargetsCommand]) Option {
	return func(cfg *options) {
		cfg.syncHandlerOpts = append(cfg.syncHandlerOpts, opts...)
	}
}

// RegisterComposeCommands builds compose command handlers and registers them
// with the provided registry. A HandlerSet containing the constructed
// handlers is returned so callers can wire additional integrations
// (dispatcher, cron) as needed.
func RegisterComposeCommands(reg CommandRegistry, composer interfaces.ComposerService, profiles interfaces.ProfileService, syncSvc interfaces.SyncService, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if composer == nil {
		return nil, errors.New("compose command registration: composer is nil")
	}
	if profiles == nil {
		return nil, errors.New("compose command registration: profile service is nil")
	}
	if syncSvc == nil {
		return nil, errors.New("compose command registration: sync service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "compose")

	composeHandler := NewComposeProfileHandler(composer, profiles, logger, cfg.composeHandlerOpts...)
	syncHandler := NewSyncTargetsHandler(syncSvc, logger, gates, cfg.syncHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(composeHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(syncHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Compose: composeHandler,
		Sync:    syncHandler,
	}, nil
}

// RegisterSyncCron wires the provided sync handler into a cron registrar using
// the supplied command configuration and message payload. The handler is
// executed with a background context.
func RegisterSyncCron(reg CronRegistrar, handler *SyncTargetsHandler, cfg command.HandlerConfig, msg SyncTargetsCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
