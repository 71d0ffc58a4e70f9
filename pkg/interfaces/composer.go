package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSeparator is the conventional horizontal-rule separator inserted
// between modules when a request does not specify its own.
const DefaultSeparator = "\n---\n"

// CompositionRequest selects an ordered sequence of instruction modules to be
// concatenated into a single document. Order is preserved exactly; no
// deduplication or merging of conflicting guidance is performed (precedence
// prose inside modules is carried through as text).
type CompositionRequest struct {
	// Modules lists the references to concatenate, in output order.
	Modules []ModuleRef
	// Separator is inserted between module bodies, never before the first
	// or after the last. Use HasSeparator to distinguish an intentionally
	// empty separator from an unset one.
	Separator string
	// HasSeparator marks Separator as explicitly chosen. When false the
	// composer applies DefaultSeparator.
	HasSeparator bool
}

// WithSeparator returns a copy of the request using the supplied separator,
// including the empty string.
func (r CompositionRequest) WithSeparator(separator string) CompositionRequest {
	r.Separator = separator
	r.HasSeparator = true
	return r
}

// ComposedDocument is the output of a composition: the ordered module bodies
// joined by the request separator. Content is deterministic for a given
// module sequence and separator; ID and ComposedAt are envelope metadata.
type ComposedDocument struct {
	ID         uuid.UUID
	Modules    []ModuleRef
	Content    []byte
	Checksum   []byte
	ComposedAt time.Time
}

// ComposerService produces composed documents from composition requests.
type ComposerService interface {
	Compose(ctx context.Context, req CompositionRequest) (*ComposedDocument, error)
}
