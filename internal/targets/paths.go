package targets

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

// ErrUnknownTarget is returned when a profile names an AI tool the registry
// does not know an output convention for.
var ErrUnknownTarget = errors.New("targets: unknown target")

// pathBuilder produces the output path for one tool, relative to the output
// root. The profile name is available for tools that keep one file per
// profile instead of a single well-known file.
type pathBuilder func(profile string) string

// targetPaths maps tool identifiers to their conventional output locations.
// The conventions are owned by each tool, not by this toolkit; the registry
// just spares callers from memorising them.
var targetPaths = map[string]pathBuilder{
	"claude":   func(string) string { return "CLAUDE.md" },
	"agents":   func(string) string { return "AGENTS.md" },
	"gemini":   func(string) string { return "GEMINI.md" },
	"copilot":  func(string) string { return path.Join(".github", "copilot-instructions.md") },
	"cursor":   func(profile string) string { return path.Join(".cursor", "rules", profile+".md") },
	"windsurf": func(string) string { return ".windsurfrules" },
}

// OutputPath returns the conventional output path for the tool, relative to
// the sync output root.
func OutputPath(target, profile string) (string, error) {
	builder, ok := targetPaths[strings.ToLower(strings.TrimSpace(target))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	return builder(profile), nil
}

// KnownTargets lists every registered tool identifier, sorted.
func KnownTargets() []string {
	names := make([]string, 0, len(targetPaths))
	for name := range targetPaths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
