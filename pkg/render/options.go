package render

// RenderOptions describe per-request presentation choices.
type RenderOptions struct {
	// Pretty asks text renderers for indented output.
	Pretty bool
	// Title overrides the heading used by renderers that print one. Empty
	// means the schema title.
	Title string
}

// HeadingFor returns the heading a renderer should print for a schema title.
func (o RenderOptions) HeadingFor(schemaTitle string) string {
	if o.Title != "" {
		return o.Title
	}
	return schemaTitle
}
