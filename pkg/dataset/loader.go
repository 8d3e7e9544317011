package dataset

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches raw document bytes from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) ([]byte, error)
}

// LoaderOptions configures the built-in loader implementation.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources. Optional.
	FileSystem fs.FS

	// HTTPClient backs SourceKindURL sources. When nil and
	// AllowHTTPFallback is set, a default client is constructed.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources without an explicit client.
	AllowHTTPFallback bool

	// RequestTimeout bounds URL fetches.
	RequestTimeout time.Duration

	// Header is attached to every URL fetch, e.g. API key headers.
	Header http.Header
}

// NewLoaderOptions returns options with HTTP fallback enabled and a sensible
// request timeout.
func NewLoaderOptions() LoaderOptions {
	return LoaderOptions{
		AllowHTTPFallback: true,
		RequestTimeout:    30 * time.Second,
	}
}
