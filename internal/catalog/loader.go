package catalog

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// categoryDirs maps the per-category directory names to their category.
var categoryDirs = map[string]interfaces.Category{
	"roles":        interfaces.CategoryRole,
	"platforms":    interfaces.CategoryPlatform,
	"languages":    interfaces.CategoryLanguage,
	"tool-configs": interfaces.CategoryToolConfig,
}

// CategoryDir returns the directory name holding modules of the category.
func CategoryDir(category interfaces.Category) string {
	for dir, cat := range categoryDirs {
		if cat == category {
			return dir
		}
	}
	return string(category) + "s"
}

// LoaderConfig configures how module files are discovered within a root.
type LoaderConfig struct {
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories below each category
	// directory are traversed.
	Recursive bool
	// Embedded marks every loaded module as coming from the compiled-in
	// starter corpus rather than the working tree.
	Embedded bool
}

// Loader turns filesystem paths into instruction modules with metadata.
type Loader struct {
	fs        fs.FS
	pattern   string
	recursive bool
	embedded  bool
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:        filesystem,
		pattern:   pattern,
		recursive: cfg.Recursive,
		embedded:  cfg.Embedded,
	}
}

// LoadFile reads and parses a single module file. The path is relative to the
// loader root and must start with a category directory.
func (l *Loader) LoadFile(ctx context.Context, filePath string) (*interfaces.InstructionModule, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel := path.Clean(strings.TrimPrefix(filePath, "./"))

	category, err := categoryForPath(rel)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("catalog read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("catalog stat %s: %w", rel, err)
	}

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("catalog parse %s: %w", rel, err)
	}

	name, err := moduleName(meta, rel)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)

	return &interfaces.InstructionModule{
		Name:         name,
		Category:     category,
		Title:        meta.Title,
		Description:  meta.Description,
		Tags:         meta.Tags,
		Body:         body,
		Source:       rel,
		Embedded:     l.embedded,
		Checksum:     sum[:],
		LastModified: info.ModTime(),
	}, nil
}

// LoadAll discovers every module under the known category directories and
// returns them ordered by category then name.
func (l *Loader) LoadAll(ctx context.Context) ([]*interfaces.InstructionModule, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var modules []*interfaces.InstructionModule

	for _, category := range interfaces.Categories() {
		dir := CategoryDir(category)
		if _, err := fs.Stat(l.fs, dir); err != nil {
			// Absent category directories are not an error; a corpus may
			// only populate the categories it needs.
			continue
		}

		walkErr := fs.WalkDir(l.fs, dir, func(walkPath string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}

			if d.IsDir() {
				if !l.shouldRecurse(dir, walkPath) {
					return fs.SkipDir
				}
				return nil
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if !l.matchesPattern(walkPath) {
				return nil
			}

			module, err := l.LoadFile(ctx, walkPath)
			if err != nil {
				return err
			}
			modules = append(modules, module)
			return nil
		})

		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Slice(modules, func(i, j int) bool {
		if modules[i].Category != modules[j].Category {
			return categoryRank(modules[i].Category) < categoryRank(modules[j].Category)
		}
		return modules[i].Name < modules[j].Name
	})

	return modules, nil
}

func (l *Loader) shouldRecurse(root, current string) bool {
	if l.recursive {
		return true
	}
	return path.Clean(root) == path.Clean(current)
}

func (l *Loader) matchesPattern(filePath string) bool {
	match, err := path.Match(l.pattern, path.Base(filePath))
	if err != nil {
		return false
	}
	return match
}

func categoryForPath(filePath string) (interfaces.Category, error) {
	segments := strings.Split(path.Clean(filePath), "/")
	if len(segments) < 2 {
		return "", fmt.Errorf("catalog: %s is not inside a category directory", filePath)
	}
	category, ok := categoryDirs[segments[0]]
	if !ok {
		return "", fmt.Errorf("catalog: %s is not a category directory", segments[0])
	}
	return category, nil
}

func moduleName(meta ModuleMeta, filePath string) (string, error) {
	if declared := strings.TrimSpace(meta.Name); declared != "" {
		if !slug.IsValid(declared) {
			return "", fmt.Errorf("%w: %q in %s", ErrInvalidModuleName, declared, filePath)
		}
		return declared, nil
	}

	stem := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	normalized, err := slug.Normalize(stem)
	if err != nil {
		return "", fmt.Errorf("catalog: derive name from %s: %w", filePath, err)
	}
	return normalized, nil
}

func categoryRank(category interfaces.Category) int {
	for i, known := range interfaces.Categories() {
		if known == category {
			return i
		}
	}
	return len(interfaces.Categories())
}
