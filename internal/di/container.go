// Package di wires the toolkit services from a runtime configuration,
// applying caller overrides before falling back to defaults.
package di

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-instructions/internal/catalog"
	"github.com/goliatone/go-instructions/internal/composer"
	"github.com/goliatone/go-instructions/internal/logging"
	"github.com/goliatone/go-instructions/internal/logging/gologger"
	"github.com/goliatone/go-instructions/internal/profiles"
	"github.com/goliatone/go-instructions/internal/render"
	"github.com/goliatone/go-instructions/internal/runtimeconfig"
	"github.com/goliatone/go-instructions/internal/targets"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	catalogSvc  interfaces.CatalogService
	composerSvc interfaces.ComposerService
	profileSvc  interfaces.ProfileService
	syncSvc     interfaces.SyncService
	renderer    interfaces.MarkdownRenderer
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCatalogService overrides the default catalog binding.
func WithCatalogService(svc interfaces.CatalogService) Option {
	return func(c *Container) {
		c.catalogSvc = svc
	}
}

// WithComposerService overrides the default composer binding.
func WithComposerService(svc interfaces.ComposerService) Option {
	return func(c *Container) {
		c.composerSvc = svc
	}
}

// WithProfileService overrides the manifest-backed profile binding.
func WithProfileService(svc interfaces.ProfileService) Option {
	return func(c *Container) {
		c.profileSvc = svc
	}
}

// WithSyncService overrides the default sync binding.
func WithSyncService(svc interfaces.SyncService) Option {
	return func(c *Container) {
		c.syncSvc = svc
	}
}

// WithRenderer overrides the default markdown renderer binding.
func WithRenderer(renderer interfaces.MarkdownRenderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// NewContainer creates a container with the provided configuration. Services
// not overridden by options are built in dependency order: catalog, composer,
// profiles, sync.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureCatalog(); err != nil {
		return nil, err
	}
	c.configureComposer()
	if err := c.configureProfiles(); err != nil {
		return nil, err
	}
	c.configureSync()
	c.configureRenderer()

	return c, nil
}

// LoggerProvider returns the configured provider; nil when logging is disabled
// and no override was supplied. Module loggers treat a nil provider as no-op.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Catalog returns the instruction module catalog.
func (c *Container) Catalog() interfaces.CatalogService {
	return c.catalogSvc
}

// Composer returns the document composer.
func (c *Container) Composer() interfaces.ComposerService {
	return c.composerSvc
}

// Profiles returns the manifest-backed profile service; nil when the
// profiles feature is disabled.
func (c *Container) Profiles() interfaces.ProfileService {
	return c.profileSvc
}

// Sync returns the target sync service; nil when the sync feature is disabled.
func (c *Container) Sync() interfaces.SyncService {
	return c.syncSvc
}

// Renderer returns the markdown preview renderer.
func (c *Container) Renderer() interfaces.MarkdownRenderer {
	return c.renderer
}

// NewWatcher builds a catalog watcher bound to the container's services. The
// caller owns the watcher lifecycle.
func (c *Container) NewWatcher() (*targets.Watcher, error) {
	if !c.Config.Features.Watch {
		return nil, fmt.Errorf("di: watch feature is disabled")
	}
	if c.syncSvc == nil {
		return nil, fmt.Errorf("di: watcher requires the sync service")
	}
	return targets.NewWatcher(targets.WatcherConfig{
		BasePath: c.Config.Catalog.BasePath,
		Debounce: c.Config.Watch.Debounce,
	}, c.catalogSvc, c.syncSvc, logging.TargetsLogger(c.loggerProvider))
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	format := strings.TrimSpace(c.Config.Logging.Format)
	if format == "" {
		format = "console"
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return fmt.Errorf("di: build logger provider: %w", err)
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCatalog() error {
	if c.catalogSvc != nil {
		return nil
	}

	svc, err := catalog.NewService(catalog.Config{
		BasePath:        c.Config.Catalog.BasePath,
		Pattern:         c.Config.Catalog.Pattern,
		Recursive:       c.Config.Catalog.Recursive,
		IncludeEmbedded: c.Config.Catalog.IncludeEmbedded,
	}, logging.CatalogLogger(c.loggerProvider))
	if err != nil {
		return fmt.Errorf("di: build catalog: %w", err)
	}
	c.catalogSvc = svc
	return nil
}

func (c *Container) configureComposer() {
	if c.composerSvc != nil {
		return
	}
	c.composerSvc = composer.NewService(c.catalogSvc, logging.ComposerLogger(c.loggerProvider))
}

func (c *Container) configureProfiles() error {
	if c.profileSvc != nil || !c.Config.Features.Profiles {
		return nil
	}

	svc, err := profiles.Load(c.Config.Profiles.ManifestPath)
	if err != nil {
		return fmt.Errorf("di: load profile manifest: %w", err)
	}
	c.profileSvc = svc
	return nil
}

func (c *Container) configureSync() {
	if c.syncSvc != nil || !c.Config.Features.Sync {
		return
	}
	if c.profileSvc == nil {
		return
	}
	c.syncSvc = targets.NewService(targets.Config{
		OutputRoot: c.Config.Targets.OutputRoot,
	}, c.composerSvc, c.profileSvc, logging.TargetsLogger(c.loggerProvider))
}

func (c *Container) configureRenderer() {
	if c.renderer != nil {
		return
	}
	c.renderer = render.NewGoldmarkRenderer(interfaces.RenderOptions{
		Extensions: c.Config.Render.Extensions,
		HardWraps:  c.Config.Render.HardWraps,
		SafeMode:   c.Config.Render.SafeMode,
	})
}
