// Package jsonschema renders compiled schemas as JSON Schema documents.
package jsonschema

import (
	"context"
	"errors"

	pkgjsonschema "github.com/goliatone/go-amisschema/pkg/jsonschema"
	"github.com/goliatone/go-amisschema/pkg/render"
)

// Name identifies the renderer in a render.Registry.
const Name = "json"

// Renderer emits the schema as JSON.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the JSON Schema renderer.
func New() Renderer { return Renderer{} }

func (Renderer) Name() string        { return Name }
func (Renderer) ContentType() string { return "application/schema+json" }

// Render encodes schema, indented when options.Pretty is set.
func (Renderer) Render(ctx context.Context, schema *pkgjsonschema.Schema, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, errors.New("jsonschema renderer: schema is nil")
	}
	if options.Pretty {
		return pkgjsonschema.MarshalIndent(schema)
	}
	return pkgjsonschema.Marshal(schema)
}
