package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-instructions/internal/logging"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// Config controls how the catalog service discovers module files.
type Config struct {
	// BasePath is the root directory where category directories live.
	BasePath string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// Recursive controls traversal below each category directory.
	Recursive bool
	// IncludeEmbedded merges the compiled-in starter corpus underneath the
	// filesystem modules. Filesystem modules shadow embedded ones sharing
	// the same reference.
	IncludeEmbedded bool
}

// Service implements interfaces.CatalogService for filesystem-backed corpora.
type Service struct {
	cfg      Config
	loader   *Loader
	embedded *Loader
	logger   interfaces.Logger

	mu      sync.RWMutex
	loaded  bool
	byRef   map[interfaces.ModuleRef]*interfaces.InstructionModule
	ordered []*interfaces.InstructionModule
}

var _ interfaces.CatalogService = (*Service)(nil)

// NewService constructs a catalog over cfg.BasePath. An empty base path with
// IncludeEmbedded set serves the starter corpus alone.
func NewService(cfg Config, logger interfaces.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.NoOp()
	}

	svc := &Service{
		cfg:    cfg,
		logger: logger,
		byRef:  map[interfaces.ModuleRef]*interfaces.InstructionModule{},
	}

	if strings.TrimSpace(cfg.BasePath) != "" || !cfg.IncludeEmbedded {
		filesystem, err := prepareFilesystem(cfg.BasePath)
		if err != nil {
			return nil, err
		}
		svc.loader = NewLoader(filesystem, LoaderConfig{
			Pattern:   cfg.Pattern,
			Recursive: cfg.Recursive,
		})
	}

	if cfg.IncludeEmbedded {
		svc.embedded = NewLoader(DefaultModulesFS(), LoaderConfig{
			Pattern:   cfg.Pattern,
			Recursive: true,
			Embedded:  true,
		})
	}

	return svc, nil
}

// Resolve returns the module addressed by ref, or ErrModuleNotFound.
func (s *Service) Resolve(ctx context.Context, ref interfaces.ModuleRef) (*interfaces.InstructionModule, error) {
	if strings.TrimSpace(ref.Name) == "" {
		return nil, ErrEmptyModuleName
	}
	if _, err := interfaces.ParseCategory(string(ref.Category)); err != nil {
		return nil, err
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	module, ok := s.byRef[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, ref)
	}
	return module, nil
}

// List returns modules matching opts, ordered by category then name.
func (s *Service) List(ctx context.Context, opts interfaces.ListOptions) ([]*interfaces.InstructionModule, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*interfaces.InstructionModule
	for _, module := range s.ordered {
		if opts.Category != "" && module.Category != opts.Category {
			continue
		}
		if !hasTags(module.Tags, opts.Tags) {
			continue
		}
		result = append(result, module)
	}
	return result, nil
}

// Reload re-reads the backing filesystem, replacing the cached corpus.
func (s *Service) Reload(ctx context.Context) error {
	var modules []*interfaces.InstructionModule

	if s.embedded != nil {
		embedded, err := s.embedded.LoadAll(ctx)
		if err != nil {
			return fmt.Errorf("catalog: load embedded corpus: %w", err)
		}
		modules = append(modules, embedded...)
	}

	if s.loader != nil {
		local, err := s.loader.LoadAll(ctx)
		if err != nil {
			return err
		}
		modules = append(modules, local...)
	}

	byRef := make(map[interfaces.ModuleRef]*interfaces.InstructionModule, len(modules))
	for _, module := range modules {
		// Later loaders win: filesystem modules shadow embedded ones.
		byRef[module.Ref()] = module
	}

	ordered := make([]*interfaces.InstructionModule, 0, len(byRef))
	for _, module := range byRef {
		ordered = append(ordered, module)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Category != ordered[j].Category {
			return categoryRank(ordered[i].Category) < categoryRank(ordered[j].Category)
		}
		return ordered[i].Name < ordered[j].Name
	})

	s.mu.Lock()
	s.byRef = byRef
	s.ordered = ordered
	s.loaded = true
	s.mu.Unlock()

	s.logger.Debug("catalog.reloaded", "module_count", len(ordered))
	return nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Reload(ctx)
}

func hasTags(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(have))
	for _, tag := range have {
		set[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	for _, tag := range want {
		if _, ok := set[strings.ToLower(strings.TrimSpace(tag))]; !ok {
			return false
		}
	}
	return true
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("catalog: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
