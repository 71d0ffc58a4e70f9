// Package composer turns ordered module selections into single documents.
// Composition is a pure transformation: order-preserving, byte-level
// concatenation of module bodies with a separator between them. It never
// reorders, deduplicates, or rewrites module content.
package composer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-instructions/internal/logging"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

// ErrEmptyRequest is returned when a composition request selects no modules.
// Producing an empty document instead would silently hand an AI tool a blank
// context file, so the degenerate case is treated as a caller error.
var ErrEmptyRequest = errors.New("composer: request selects no modules")

// Service implements interfaces.ComposerService on top of a catalog.
type Service struct {
	catalog interfaces.CatalogService
	logger  interfaces.Logger
}

var _ interfaces.ComposerService = (*Service)(nil)

// NewService constructs a composer bound to the supplied catalog.
func NewService(catalog interfaces.CatalogService, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// Compose resolves every referenced module and joins their bodies in request
// order. The separator appears only between modules; a single-module request
// yields that module's body unchanged. Resolution failures abort the run
// before any output is assembled, so callers never observe partial documents.
func (s *Service) Compose(ctx context.Context, req interfaces.CompositionRequest) (*interfaces.ComposedDocument, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if len(req.Modules) == 0 {
		return nil, ErrEmptyRequest
	}

	separator := interfaces.DefaultSeparator
	if req.HasSeparator {
		separator = req.Separator
	}

	modules := make([]*interfaces.InstructionModule, 0, len(req.Modules))
	for _, ref := range req.Modules {
		module, err := s.catalog.Resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}

	var buf bytes.Buffer
	for i, module := range modules {
		if i > 0 {
			buf.WriteString(separator)
		}
		buf.Write(module.Body)
	}

	content := buf.Bytes()
	sum := sha256.Sum256(content)

	refs := make([]interfaces.ModuleRef, 0, len(modules))
	for _, module := range modules {
		refs = append(refs, module.Ref())
	}

	doc := &interfaces.ComposedDocument{
		ID:         uuid.New(),
		Modules:    refs,
		Content:    content,
		Checksum:   sum[:],
		ComposedAt: time.Now().UTC(),
	}

	s.logger.Debug("composer.composed",
		"module_count", len(refs),
		"content_bytes", len(content),
	)

	return doc, nil
}
