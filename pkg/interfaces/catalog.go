package interfaces

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Category groups instruction modules by the kind of guidance they carry.
// Categories are purely organisational: they drive catalog layout and
// selection, never composition behaviour.
type Category string

const (
	// CategoryRole holds guidance for a specific engineering role
	// (e.g. "data-engineer", "backend-engineer").
	CategoryRole Category = "role"
	// CategoryPlatform holds platform or runtime conventions
	// (e.g. "kubernetes", "aws").
	CategoryPlatform Category = "platform"
	// CategoryLanguage holds language-specific coding standards
	// (e.g. "go", "python").
	CategoryLanguage Category = "language"
	// CategoryToolConfig holds conventions for a specific AI tool's
	// configuration surface.
	CategoryToolConfig Category = "tool-config"
)

// Categories returns every known category in catalog listing order.
func Categories() []Category {
	return []Category{CategoryRole, CategoryPlatform, CategoryLanguage, CategoryToolConfig}
}

// ParseCategory normalises and validates a category identifier.
func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case CategoryRole, CategoryPlatform, CategoryLanguage, CategoryToolConfig:
		return normalized, nil
	}
	return "", fmt.Errorf("catalog: unknown category %q", value)
}

// InstructionModule represents a named block of markdown guidance. Content is
// treated as immutable input: composition reads it, never rewrites it.
type InstructionModule struct {
	Name        string
	Category    Category
	Title       string
	Description string
	Tags        []string
	Body        []byte
	// Source records where the module was loaded from, relative to the
	// catalog root. Embedded modules use their embed path.
	Source   string
	Embedded bool
	// Checksum stores a SHA-256 digest of the raw file bytes so sync
	// workflows can detect changes without re-reading content.
	Checksum     []byte
	LastModified time.Time
}

// Ref returns the module's canonical reference.
func (m *InstructionModule) Ref() ModuleRef {
	if m == nil {
		return ModuleRef{}
	}
	return ModuleRef{Category: m.Category, Name: m.Name}
}

// ModuleRef addresses an instruction module by category and name.
type ModuleRef struct {
	Category Category `json:"category" yaml:"category"`
	Name     string   `json:"name" yaml:"name"`
}

// String renders the reference in its canonical "category/name" form.
func (r ModuleRef) String() string {
	return string(r.Category) + "/" + r.Name
}

// ParseModuleRef parses a "category/name" reference. The category segment may
// use the plural directory spelling (e.g. "roles/data-engineer").
func ParseModuleRef(value string) (ModuleRef, error) {
	trimmed := strings.TrimSpace(value)
	segments := strings.SplitN(trimmed, "/", 2)
	if len(segments) != 2 {
		return ModuleRef{}, fmt.Errorf("catalog: module reference %q must be category/name", value)
	}

	category, err := ParseCategory(segments[0])
	if err != nil {
		category, err = ParseCategory(strings.TrimSuffix(segments[0], "s"))
	}
	if err != nil {
		return ModuleRef{}, err
	}

	name := strings.TrimSpace(segments[1])
	if name == "" {
		return ModuleRef{}, fmt.Errorf("catalog: module reference %q has an empty name", value)
	}

	return ModuleRef{Category: category, Name: name}, nil
}

// ListOptions filters catalog listings.
type ListOptions struct {
	// Category narrows results to a single category when set.
	Category Category
	// Tags keeps only modules carrying every listed tag.
	Tags []string
}

// CatalogService exposes discovery and resolution over the instruction corpus.
type CatalogService interface {
	// Resolve returns the module addressed by ref, or ErrModuleNotFound.
	Resolve(ctx context.Context, ref ModuleRef) (*InstructionModule, error)
	// List returns modules matching opts, ordered by category then name.
	List(ctx context.Context, opts ListOptions) ([]*InstructionModule, error)
	// Reload re-reads the backing filesystem, picking up edits made since
	// the catalog was built.
	Reload(ctx context.Context) error
}
