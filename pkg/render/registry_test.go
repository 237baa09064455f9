package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-amisschema/pkg/jsonschema"
	"github.com/goliatone/go-amisschema/pkg/render"
)

type stubRenderer struct {
	name        string
	contentType string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return s.contentType }
func (s stubRenderer) Render(context.Context, *jsonschema.Schema, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubRenderer{name: "report", contentType: "text/markdown; charset=utf-8"}, "markdown", "MD")
	reg.MustRegister(stubRenderer{name: "json", contentType: "application/schema+json"})

	if err := reg.Register(stubRenderer{name: "JSON"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(stubRenderer{name: "notes"}, "markdown"); err == nil {
		t.Fatalf("expected alias collision error")
	}
	if reg.Has("notes") {
		t.Fatalf("failed registration must not leave the renderer behind")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}

	if diff := cmp.Diff([]string{"json", "report"}, reg.List()); diff != "" {
		t.Fatalf("renderer names mismatch (-want +got):\n%s", diff)
	}

	for _, format := range []string{"report", " Markdown ", "md"} {
		got, err := reg.Get(format)
		if err != nil {
			t.Fatalf("get %q: %v", format, err)
		}
		if got.Name() != "report" {
			t.Fatalf("%q resolved to %q", format, got.Name())
		}
	}

	_, err := reg.Get("html")
	if err == nil || !strings.Contains(err.Error(), "available: [json report]") {
		t.Fatalf("expected not found error listing names, got %v", err)
	}
}

func TestRegistry_ForContentType(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubRenderer{name: "report", contentType: "text/markdown; charset=utf-8"})
	reg.MustRegister(stubRenderer{name: "json", contentType: "application/schema+json"})

	got, ok := reg.ForContentType("Text/Markdown")
	if !ok || got.Name() != "report" {
		t.Fatalf("expected report renderer, got %v %v", got, ok)
	}
	if _, ok := reg.ForContentType("text/html"); ok {
		t.Fatalf("unexpected renderer for text/html")
	}
	if _, ok := reg.ForContentType(""); ok {
		t.Fatalf("unexpected renderer for empty content type")
	}
}

func TestRenderOptions_HeadingFor(t *testing.T) {
	if got := (render.RenderOptions{}).HeadingFor("Signup"); got != "Signup" {
		t.Fatalf("heading mismatch: %q", got)
	}
	if got := (render.RenderOptions{Title: "Override"}).HeadingFor("Signup"); got != "Override" {
		t.Fatalf("heading mismatch: %q", got)
	}
}
