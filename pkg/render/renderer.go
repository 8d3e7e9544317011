package render

import (
	"context"

	"github.com/goliatone/go-animalgen/pkg/page"
)

// Renderer converts a page model into a byte representation (HTML fragments
// ready for placeholder substitution).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model page.Model, options RenderOptions) ([]byte, error)
}
