package instructions

import (
	"github.com/goliatone/go-instructions/internal/di"
	"github.com/goliatone/go-instructions/internal/targets"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// CatalogService exports the catalog contract for consumers of the
// instructions package.
type CatalogService = interfaces.CatalogService

// ComposerService exports the composer contract.
type ComposerService = interfaces.ComposerService

// ProfileService exports the profile manifest contract.
type ProfileService = interfaces.ProfileService

// SyncService exports the target sync contract.
type SyncService = interfaces.SyncService

// MarkdownRenderer exports the preview renderer contract.
type MarkdownRenderer = interfaces.MarkdownRenderer

// InstructionModule exports the module DTO.
type InstructionModule = interfaces.InstructionModule

// ModuleRef exports the module reference DTO.
type ModuleRef = interfaces.ModuleRef

// Category exports the module category type.
type Category = interfaces.Category

// ListOptions exports the catalog listing filters.
type ListOptions = interfaces.ListOptions

// CompositionRequest exports the composition request DTO.
type CompositionRequest = interfaces.CompositionRequest

// ComposedDocument exports the composition result DTO.
type ComposedDocument = interfaces.ComposedDocument

// Profile exports the manifest profile DTO.
type Profile = interfaces.Profile

// SyncRequest exports the sync request DTO.
type SyncRequest = interfaces.SyncRequest

// SyncResult exports the sync result DTO.
type SyncResult = interfaces.SyncResult

// Watcher exports the catalog watcher.
type Watcher = targets.Watcher

// DefaultSeparator re-exports the conventional module separator.
const DefaultSeparator = interfaces.DefaultSeparator

// Module represents the top level toolkit runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a toolkit module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the configured catalog service.
func (m *Module) Catalog() CatalogService {
	return m.container.Catalog()
}

// Composer returns the configured composer service.
func (m *Module) Composer() ComposerService {
	return m.container.Composer()
}

// Profiles returns the manifest-backed profile service when configured.
func (m *Module) Profiles() ProfileService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Profiles()
}

// Sync returns the target sync service when configured.
func (m *Module) Sync() SyncService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Sync()
}

// Renderer returns the markdown preview renderer.
func (m *Module) Renderer() MarkdownRenderer {
	return m.container.Renderer()
}

// NewWatcher builds a catalog watcher over the configured base path. The
// caller owns the watcher lifecycle.
func (m *Module) NewWatcher() (*Watcher, error) {
	return m.container.NewWatcher()
}

// LoggerProvider returns the configured logger provider; nil when logging is
// disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}
