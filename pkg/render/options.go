package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the page model pipeline.
type RenderOptions struct {
	// ChromeClasses overrides the semantic CSS classes a renderer applies to
	// its markup, keyed by slot name (e.g. "item", "title"). Empty entries
	// fall back to the renderer defaults.
	ChromeClasses map[string]string
}
