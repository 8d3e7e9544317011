package cards

import (
	"context"
	"strings"

	"github.com/goliatone/go-animalgen/pkg/page"
	"github.com/goliatone/go-animalgen/pkg/render"
)

// RendererName is the registry identifier for the cards renderer.
const RendererName = "cards"

// Renderer formats a page model as a sequence of card fragments, optionally
// prefixed by a banner, ready for placeholder substitution.
type Renderer struct{}

// Ensure the implementation satisfies the render contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the cards renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return RendererName
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render concatenates the banner fragment (when present) and one card
// fragment per record, preserving record order.
func (r *Renderer) Render(ctx context.Context, model page.Model, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	classes := resolveChromeClasses(options.ChromeClasses)

	var builder strings.Builder
	builder.WriteString(buildBannerMarkup(model.Banner, classes))
	for _, record := range model.Records {
		builder.WriteString(buildCardMarkup(record, classes))
	}
	return []byte(builder.String()), nil
}
