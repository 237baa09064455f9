package pongo_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-amisschema/pkg/render/template/pongo"
)

func TestEngine_RenderTemplate(t *testing.T) {
	files := fstest.MapFS{
		"hello.tpl": {Data: []byte("Hello {{ name }}!")},
	}
	engine, err := pongo.New(pongo.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" || buf.String() != got {
		t.Fatalf("unexpected output %q / %q", got, buf.String())
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{}), pongo.WithExtension("md"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.RenderString("{% for n in items %}{{ n }},{% endfor %}", map[string]any{"items": []string{"a", "b"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "a,b," {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNew_RequiresFS(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}
