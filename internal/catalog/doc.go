// Package catalog discovers instruction modules on disk and resolves
// category/name references against them. Modules are plain markdown files
// with optional YAML frontmatter, organised under per-category directories
// (roles/, platforms/, languages/, tool-configs/). A small embedded starter
// corpus ships with the toolkit; filesystem modules shadow embedded ones that
// share the same reference.
package catalog
