package render

import (
	"context"

	"github.com/goliatone/go-amisschema/pkg/jsonschema"
)

// Renderer turns a compiled schema into an output representation (JSON
// Schema, OpenAPI component, markdown report, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, schema *jsonschema.Schema, options RenderOptions) ([]byte, error)
}
