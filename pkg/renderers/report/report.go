// Package report renders a markdown summary of a compiled schema: one table
// row per field path with its type and whether the form requires it.
package report

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-amisschema/pkg/jsonschema"
	"github.com/goliatone/go-amisschema/pkg/render"
	"github.com/goliatone/go-amisschema/pkg/render/template"
	"github.com/goliatone/go-amisschema/pkg/render/template/pongo"
)

// Name identifies the renderer in a render.Registry.
const Name = "report"

const defaultHeading = "Form schema"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Row is one line of the report.
type Row struct {
	Path     string
	Type     string
	Required string
}

// Renderer renders the report template.
type Renderer struct {
	templates template.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a Renderer over the embedded templates.
func New() (*Renderer, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, err
	}
	engine, err := pongo.New(pongo.WithFS(sub))
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: engine}, nil
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return "text/markdown; charset=utf-8" }

// Render produces the markdown table.
func (r *Renderer) Render(ctx context.Context, schema *jsonschema.Schema, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, errors.New("report: schema is nil")
	}
	heading := options.HeadingFor(schema.TitleText())
	if heading == "" {
		heading = defaultHeading
	}

	out, err := r.templates.RenderTemplate("report", map[string]any{
		"heading": heading,
		"rows":    Rows(schema),
	})
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(out, "\n") + "\n"), nil
}

// Rows flattens schema into report rows sorted by path. Array elements use
// a "[]" suffix and carry "-" in the required column.
func Rows(schema *jsonschema.Schema) []Row {
	var rows []Row
	collectRows(schema, "", &rows)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Path < rows[j].Path })
	return rows
}

func collectRows(schema *jsonschema.Schema, prefix string, rows *[]Row) {
	if schema == nil {
		return
	}
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	for name, prop := range schema.Properties {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		*rows = append(*rows, Row{Path: path, Type: typeLabel(prop), Required: yesNo(required[name])})
		collectNested(prop, path, rows)
	}
}

func collectNested(schema *jsonschema.Schema, path string, rows *[]Row) {
	switch {
	case schema == nil:
	case schema.Items != nil:
		itemPath := path + "[]"
		*rows = append(*rows, Row{Path: itemPath, Type: typeLabel(schema.Items), Required: "-"})
		collectNested(schema.Items, itemPath, rows)
	case len(schema.Properties) > 0:
		collectRows(schema, path, rows)
	}
}

func typeLabel(schema *jsonschema.Schema) string {
	if schema == nil || schema.Type == "" {
		return "any"
	}
	return string(schema.Type)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
