package openapi_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-amisschema/pkg/jsonschema"
	"github.com/goliatone/go-amisschema/pkg/render"
	"github.com/goliatone/go-amisschema/pkg/renderers/openapi"
)

func sampleSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:  "Signup",
		Schema: jsonschema.Dialect,
		Type:   jsonschema.TypeObject,
		Properties: map[string]*jsonschema.Schema{
			"email": jsonschema.NewString(),
			"age":   jsonschema.NewNumber(),
			"tags":  jsonschema.NewArray(jsonschema.NewString()),
			"extra": {},
		},
		Required: []string{"email"},
	}
}

func TestFromSchema(t *testing.T) {
	got := openapi.FromSchema(sampleSchema())

	if got.Title != "Signup" {
		t.Fatalf("title mismatch: %q", got.Title)
	}
	if !got.Type.Is(openapi3.TypeObject) {
		t.Fatalf("expected object type, got %v", got.Type)
	}
	if diff := cmp.Diff([]string{"email"}, got.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	tags := got.Properties["tags"].Value
	if !tags.Type.Is(openapi3.TypeArray) || !tags.Items.Value.Type.Is(openapi3.TypeString) {
		t.Fatalf("tags not converted to array of strings: %#v", tags)
	}
	if !got.Properties["age"].Value.Type.Is(openapi3.TypeNumber) {
		t.Fatalf("age not converted to number")
	}
	if got.Properties["extra"].Value.Type != nil {
		t.Fatalf("empty schema should have no type")
	}

	if openapi.FromSchema(nil) != nil {
		t.Fatalf("nil schema should convert to nil")
	}
}

func TestValidate(t *testing.T) {
	if err := openapi.Validate(context.Background(), sampleSchema()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := openapi.Validate(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil schema")
	}
}

func TestRenderer_Render(t *testing.T) {
	schema := jsonschema.NewObject()
	schema.Properties["ok"] = jsonschema.NewBoolean()

	got, err := openapi.New().Render(context.Background(), schema, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := map[string]any{
		"type":       "object",
		"properties": map[string]any{"ok": map[string]any{"type": "boolean"}},
	}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
