package amisschema

import (
	"context"

	"github.com/goliatone/go-amisschema/pkg/compiler"
	"github.com/goliatone/go-amisschema/pkg/jsonschema"
	"github.com/goliatone/go-amisschema/pkg/orchestrator"
	"github.com/goliatone/go-amisschema/pkg/render"
	"github.com/goliatone/go-amisschema/pkg/schema"
)

// RenderOptions aliases render.RenderOptions for callers of Generate.
type RenderOptions = render.RenderOptions

// Schema aliases the compiled output type.
type Schema = jsonschema.Schema

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewCompiler returns a compiler configured with options.
func NewCompiler(options ...compiler.Option) *compiler.Compiler {
	return compiler.New(options...)
}

// Convert turns a decoded amis form (map[string]any from JSON or YAML) into
// its JSON Schema.
func Convert(form any, options ...compiler.Option) (*jsonschema.Schema, error) {
	return compiler.New(options...).Convert(form)
}

// ConvertJSON decodes raw JSON or YAML and converts it.
func ConvertJSON(raw []byte, options ...compiler.Option) (*jsonschema.Schema, error) {
	doc, err := schema.NewDocument(schema.SourceFromFS("inline.json"), raw)
	if err != nil {
		return nil, err
	}
	gen := orchestrator.New(orchestrator.WithCompiler(compiler.New(options...)))
	return gen.Compile(context.Background(), orchestrator.Request{Document: &doc})
}

// ConvertSource loads the document at src (file path or URL) and converts it.
// URL sources require a loader with HTTP enabled, see NewLoader.
func ConvertSource(ctx context.Context, src schema.Source, options ...orchestrator.Option) (*jsonschema.Schema, error) {
	return orchestrator.New(options...).Compile(ctx, orchestrator.Request{Source: src})
}

// Generate loads src, converts it and renders the result with rendererName
// ("json", "openapi" or "report").
func Generate(ctx context.Context, src schema.Source, rendererName string, renderOptions RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:        src,
		Renderer:      rendererName,
		RenderOptions: renderOptions,
	})
}
