package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	datasetloader "github.com/goliatone/go-animalgen/internal/dataset/loader"
	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/dataset"
	"github.com/goliatone/go-animalgen/pkg/output"
	"github.com/goliatone/go-animalgen/pkg/page"
	"github.com/goliatone/go-animalgen/pkg/render"
	"github.com/goliatone/go-animalgen/pkg/renderers/cards"
	"github.com/goliatone/go-animalgen/pkg/tui"
)

const defaultRendererName = cards.RendererName

// RemoteSource looks up records for a free-text query. Implementations map
// transport failures to an empty slice before reaching the pipeline, so zero
// results and failed lookups are indistinguishable here.
type RemoteSource interface {
	FetchOrEmpty(ctx context.Context, query string) []animal.Record
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom dataset/template loader.
func WithLoader(loader dataset.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithPromptDriver injects the interactive boundary.
func WithPromptDriver(driver tui.PromptDriver) Option {
	return func(o *Orchestrator) {
		o.prompter = driver
	}
}

// WithRemoteSource injects the remote lookup collaborator.
func WithRemoteSource(source RemoteSource) Option {
	return func(o *Orchestrator) {
		o.remote = source
	}
}

// WithSink injects the output sink pages are persisted through.
func WithSink(sink output.Sink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
	}
}

// WithLogger injects a structured logger. The library default is a no-op
// logger so embedding callers stay quiet unless they opt in.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator sequences the render pipeline: load records → group → select →
// format fragments → substitute into the template → persist. It owns no
// formatting logic itself. Missing dependencies are initialised with the
// built-in implementations so callers can start with a single constructor
// call.
type Orchestrator struct {
	loader          dataset.Loader
	registry        *render.Registry
	prompter        tui.PromptDriver
	remote          RemoteSource
	sink            output.Sink
	logger          *zap.Logger
	defaultRenderer string
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one non-interactive render pass: the records and banner
// to format, and the template to substitute into.
type Request struct {
	// TemplateSource identifies the HTML template carrying the placeholder.
	TemplateSource dataset.Source

	// Banner optionally heads the composed fragments.
	Banner *page.Banner

	// Records are formatted into card fragments in order.
	Records []animal.Record

	// Renderer names the renderer to use; empty falls back to the default.
	Renderer string

	// RenderOptions carries per-request renderer instructions.
	RenderOptions render.RenderOptions
}

// Generate runs the formatter → compositor sequence and returns the final
// page bytes. A template without the placeholder is reported and passed
// through unchanged rather than failing the pass.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	model := page.Model{Banner: req.Banner, Records: req.Records}
	content, err := renderer.Render(ctx, model, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render fragments: %w", err)
	}

	template := dataset.Template(ctx, o.loader, req.TemplateSource, o.logger)
	final, err := page.Substitute(template, string(content))
	if err != nil {
		if !errors.Is(err, page.ErrPlaceholderMissing) {
			return nil, fmt.Errorf("orchestrator: substitute: %w", err)
		}
		o.logger.Warn("orchestrator: template placeholder missing, page produced without injected content",
			zap.String("placeholder", page.Placeholder))
	}
	return []byte(final), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) persist(ctx context.Context, name string, data []byte) error {
	if o.sink == nil {
		return errors.New("orchestrator: output sink is nil")
	}
	if err := o.sink.Write(ctx, name, data); err != nil {
		return fmt.Errorf("orchestrator: persist page: %w", err)
	}
	o.logger.Info("orchestrator: page written", zap.String("destination", name))
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = datasetloader.New(dataset.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(cards.New())
	}
	if o.prompter == nil {
		o.prompter = tui.NewSurveyDriver()
	}
	if o.sink == nil {
		o.sink = &output.FileSink{}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
