package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/dataset"
	"github.com/goliatone/go-animalgen/pkg/page"
	"github.com/goliatone/go-animalgen/pkg/render"
	"github.com/goliatone/go-animalgen/pkg/selection"
)

// LocalRequest configures the local-dataset flow.
type LocalRequest struct {
	DatasetSource  dataset.Source
	TemplateSource dataset.Source

	// Attribute (optionally narrowed by SubAttribute) computes the grouping
	// key for every record.
	Attribute    string
	SubAttribute string

	// Output names the destination the final page is persisted under.
	Output string

	Renderer      string
	RenderOptions render.RenderOptions
}

// RunLocal executes the local flow: load dataset → group → interactive
// selection → compose → substitute → persist. An empty group set is terminal
// here — there is nothing to render — and surfaces as selection.ErrNoChoices
// so the caller can treat it as a non-fatal outcome.
func (o *Orchestrator) RunLocal(ctx context.Context, req LocalRequest) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if req.Attribute == "" {
		return errors.New("orchestrator: grouping attribute is required")
	}

	records := dataset.Records(ctx, o.loader, req.DatasetSource, o.logger)
	buckets := animal.GroupBy(records, req.Attribute, req.SubAttribute)

	key, err := selection.Run(ctx, o.prompter, selectionMessage(req.Attribute, req.SubAttribute), buckets.SortedKeys())
	if err != nil {
		if errors.Is(err, selection.ErrNoChoices) {
			o.logger.Warn("orchestrator: no groups to select from, nothing to render",
				zap.String("attribute", req.Attribute),
				zap.String("sub_attribute", req.SubAttribute))
		}
		return err
	}

	bucket, _ := buckets.Get(key)
	pageBytes, err := o.Generate(ctx, Request{
		TemplateSource: req.TemplateSource,
		Banner:         page.FilterBanner(key),
		Records:        bucket,
		Renderer:       req.Renderer,
		RenderOptions:  req.RenderOptions,
	})
	if err != nil {
		return err
	}
	return o.persist(ctx, req.Output, pageBytes)
}

func selectionMessage(attribute, subAttribute string) string {
	field := attribute
	if subAttribute != "" {
		field = subAttribute
	}
	return fmt.Sprintf("Select a %s:", field)
}
