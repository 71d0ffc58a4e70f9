package catalog

import (
	"embed"
	"io/fs"
)

//go:embed defaults
var defaultsFS embed.FS

// DefaultModulesFS returns the compiled-in starter corpus, rooted so that the
// category directories sit at the top level.
func DefaultModulesFS() fs.FS {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		// The embed layout is fixed at compile time.
		panic("catalog: embedded defaults missing: " + err.Error())
	}
	return sub
}
