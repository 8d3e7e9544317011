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
	"github.com/goliatone/go-animalgen/pkg/tui"
)

// RemoteRequest configures the remote-lookup flow.
type RemoteRequest struct {
	TemplateSource dataset.Source

	Attribute    string
	SubAttribute string

	Output string

	Renderer      string
	RenderOptions render.RenderOptions
}

// RunRemote executes the remote flow: prompt for a free-text query → fetch →
// group → interactive selection → compose → substitute → persist. A query
// with zero results short-circuits into an error-banner page. Unlike the
// local flow, an empty group set is not terminal: the loop asks for a new
// query instead.
func (o *Orchestrator) RunRemote(ctx context.Context, req RemoteRequest) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if o.remote == nil {
		return errors.New("orchestrator: remote source is not configured")
	}
	if req.Attribute == "" {
		return errors.New("orchestrator: grouping attribute is required")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		query, err := o.prompter.Input(ctx, tui.InputConfig{Message: "Enter a name of an animal:"})
		if err != nil {
			return fmt.Errorf("orchestrator: prompt query: %w", err)
		}

		records := o.remote.FetchOrEmpty(ctx, query)
		if len(records) == 0 {
			o.logger.Info("orchestrator: query matched nothing, composing error page",
				zap.String("query", query))
			pageBytes, err := o.Generate(ctx, Request{
				TemplateSource: req.TemplateSource,
				Banner:         page.ErrorBanner(query),
				Renderer:       req.Renderer,
				RenderOptions:  req.RenderOptions,
			})
			if err != nil {
				return err
			}
			return o.persist(ctx, req.Output, pageBytes)
		}

		buckets := animal.GroupBy(records, req.Attribute, req.SubAttribute)
		key, err := selection.Run(ctx, o.prompter, selectionMessage(req.Attribute, req.SubAttribute), buckets.SortedKeys())
		if err != nil {
			if errors.Is(err, selection.ErrNoChoices) {
				o.logger.Info("orchestrator: no groups for query, asking for a new one",
					zap.String("query", query))
				continue
			}
			return err
		}

		bucket, _ := buckets.Get(key)
		pageBytes, err := o.Generate(ctx, Request{
			TemplateSource: req.TemplateSource,
			Banner:         page.ResultsBanner(query, key),
			Records:        bucket,
			Renderer:       req.Renderer,
			RenderOptions:  req.RenderOptions,
		})
		if err != nil {
			return err
		}
		return o.persist(ctx, req.Output, pageBytes)
	}
}
