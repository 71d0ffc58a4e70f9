package interfaces

// MarkdownRenderer converts composed markdown into HTML for previewing.
// Composition itself never parses markdown semantics; rendering exists purely
// so humans can sanity-check a composed document before handing it to a tool.
type MarkdownRenderer interface {
	// Render converts markdown into HTML using the renderer's defaults.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts markdown into HTML using the supplied overrides.
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions customises preview rendering, keeping option names readable
// for configuration unmarshalling and CLI flags.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}
