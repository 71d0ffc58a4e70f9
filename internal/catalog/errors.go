package catalog

import "errors"

var (
	// ErrModuleNotFound is returned when a reference does not resolve to a
	// known module. Missing static resources are never retried.
	ErrModuleNotFound = errors.New("catalog: module not found")
	// ErrEmptyModuleName is returned when a reference carries no name.
	ErrEmptyModuleName = errors.New("catalog: module name is required")
	// ErrInvalidModuleName is returned when a frontmatter name does not
	// satisfy the slug rules used for module identifiers.
	ErrInvalidModuleName = errors.New("catalog: module name is not a valid slug")
)
