package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	internalLoader "github.com/goliatone/go-amisschema/internal/loader"
	"github.com/goliatone/go-amisschema/pkg/compiler"
	"github.com/goliatone/go-amisschema/pkg/jsonschema"
	"github.com/goliatone/go-amisschema/pkg/render"
	jsonrenderer "github.com/goliatone/go-amisschema/pkg/renderers/jsonschema"
	openapirenderer "github.com/goliatone/go-amisschema/pkg/renderers/openapi"
	"github.com/goliatone/go-amisschema/pkg/renderers/report"
	"github.com/goliatone/go-amisschema/pkg/schema"
)

const defaultRendererName = jsonrenderer.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader schema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithCompiler injects a preconfigured compiler.
func WithCompiler(c *compiler.Compiler) Option {
	return func(o *Orchestrator) {
		o.compiler = c
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

// WithLogger routes pipeline logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates loading, compiling and rendering. Missing stages
// fall back to the built-in implementations: an offline loader, a default
// compiler and the json, openapi and report renderers.
type Orchestrator struct {
	loader          schema.Loader
	compiler        *compiler.Compiler
	registry        *render.Registry
	defaultRenderer string
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
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

// Request describes one conversion.
type Request struct {
	// Source identifies where the amis document lives. Optional when
	// Document or Value is supplied.
	Source schema.Source

	// Document bypasses the loader with an already fetched payload.
	Document *schema.Document

	// Value bypasses loading and decoding with an already decoded form.
	Value any

	// Renderer names the output renderer; empty uses the default.
	Renderer string

	RenderOptions render.RenderOptions
}

// Compile resolves the request's input and returns the compiled schema.
func (o *Orchestrator) Compile(ctx context.Context, req Request) (*jsonschema.Schema, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}

	value, err := o.resolveValue(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := o.compiler.Convert(value)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("compiled amis form", "source", sourceLabel(req), "properties", len(out.Properties), "required", len(out.Required))
	return out, nil
}

// Generate compiles the request and renders it with the selected renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	compiled, err := o.Compile(ctx, req)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, compiled, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveValue(ctx context.Context, req Request) (any, error) {
	if req.Value != nil {
		return req.Value, nil
	}

	var doc schema.Document
	switch {
	case req.Document != nil:
		doc = *req.Document
	case req.Source != nil:
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load document: %w", err)
		}
		doc = loaded
	default:
		return nil, errors.New("orchestrator: source, document or value is required")
	}

	value, err := internalLoader.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: decode document: %w", err)
	}
	return value, nil
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
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.loader == nil {
		o.loader = internalLoader.New(schema.NewLoaderOptions())
	}
	if o.compiler == nil {
		o.compiler = compiler.New(compiler.WithLogger(o.logger))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(jsonrenderer.New(), "jsonschema")
		o.registry.MustRegister(openapirenderer.New(), "oas")
		reportRenderer, err := report.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: report renderer: %w", err)
		} else {
			o.registry.MustRegister(reportRenderer, "markdown", "md")
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

func sourceLabel(req Request) string {
	switch {
	case req.Value != nil:
		return "value"
	case req.Document != nil:
		return req.Document.Location()
	case req.Source != nil:
		return req.Source.Location()
	default:
		return ""
	}
}
