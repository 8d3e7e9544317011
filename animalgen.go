// Package animalgen renders static HTML pages listing animals, sourced from
// a local JSON dataset or a remote lookup API, grouped by a chosen attribute
// and substituted into an HTML template at a placeholder marker.
package animalgen

import (
	"context"

	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/dataset"
	"github.com/goliatone/go-animalgen/pkg/orchestrator"
	"github.com/goliatone/go-animalgen/pkg/page"
)

// Record is one animal's loosely structured data.
type Record = animal.Record

// Request describes a non-interactive render pass.
type Request = orchestrator.Request

// NewOrchestrator exposes the pipeline constructor from the top-level module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GeneratePage formats records into card fragments, optionally headed by a
// banner, and substitutes them into the template identified by source. It is
// the simplest entry point for callers that just want page bytes.
func GeneratePage(ctx context.Context, template dataset.Source, banner *page.Banner, records []Record, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		TemplateSource: template,
		Banner:         banner,
		Records:        records,
	})
}

// GroupBy re-exports the grouping engine for callers composing their own
// pipelines.
func GroupBy(records []Record, attribute string, subAttribute ...string) *animal.Buckets {
	return animal.GroupBy(records, attribute, subAttribute...)
}
