// Package openapi exports compiled schemas as OpenAPI 3 schema objects using
// kin-openapi, so a form's submission shape can be embedded in an API
// description as a request body component.
package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	gojson "github.com/goccy/go-json"

	"github.com/goliatone/go-amisschema/pkg/jsonschema"
	"github.com/goliatone/go-amisschema/pkg/render"
)

// Name identifies the renderer in a render.Registry.
const Name = "openapi"

// FromSchema converts a compiled schema into an OpenAPI schema. The dialect
// marker is dropped since OpenAPI documents fix their own dialect.
func FromSchema(schema *jsonschema.Schema) *openapi3.Schema {
	if schema == nil {
		return nil
	}
	out := openapi3.NewSchema()
	out.Title = schema.TitleText()
	if schema.Type != "" {
		out.Type = &openapi3.Types{string(schema.Type)}
	}
	if schema.Properties != nil {
		out.Properties = make(openapi3.Schemas, len(schema.Properties))
		for name, prop := range schema.Properties {
			out.Properties[name] = openapi3.NewSchemaRef("", FromSchema(prop))
		}
	}
	if len(schema.Required) > 0 {
		out.Required = append([]string(nil), schema.Required...)
	}
	if schema.Items != nil {
		out.Items = openapi3.NewSchemaRef("", FromSchema(schema.Items))
	}
	return out
}

// Validate runs kin-openapi's structural checks over the converted schema.
func Validate(ctx context.Context, schema *jsonschema.Schema) error {
	if schema == nil {
		return errors.New("openapi: schema is nil")
	}
	if err := FromSchema(schema).Validate(ctx); err != nil {
		return fmt.Errorf("openapi: invalid schema: %w", err)
	}
	return nil
}

// Renderer emits the OpenAPI form of a schema as JSON.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the OpenAPI renderer.
func New() Renderer { return Renderer{} }

func (Renderer) Name() string        { return Name }
func (Renderer) ContentType() string { return "application/json" }

// Render validates and encodes the OpenAPI schema.
func (Renderer) Render(ctx context.Context, schema *jsonschema.Schema, options render.RenderOptions) ([]byte, error) {
	if err := Validate(ctx, schema); err != nil {
		return nil, err
	}
	converted := FromSchema(schema)
	if options.Pretty {
		return gojson.MarshalIndent(converted, "", "  ")
	}
	return gojson.Marshal(converted)
}
