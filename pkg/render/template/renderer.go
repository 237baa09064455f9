package template

import (
	"io"
)

// TemplateRenderer renders named templates or inline template strings with
// the supplied data. Output is returned and also written to every writer in
// out.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data map[string]any, out ...io.Writer) (string, error)
}
