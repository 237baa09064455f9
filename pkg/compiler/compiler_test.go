package compiler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-amisschema/pkg/amis"
	"github.com/goliatone/go-amisschema/pkg/compiler"
	"github.com/goliatone/go-amisschema/pkg/jsonschema"
)

func TestConvert_Form(t *testing.T) {
	form := map[string]any{
		"type":  "form",
		"title": "T",
		"controls": []any{
			map[string]any{"type": "Text", "name": "x", "required": true},
		},
	}

	got, err := compiler.New().Convert(form)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := &jsonschema.Schema{
		Title:      "T",
		Schema:     "http://json-schema.org/schema#",
		Type:       jsonschema.TypeObject,
		Properties: map[string]*jsonschema.Schema{"x": jsonschema.NewString()},
		Required:   []string{"x"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_InvalidRoot(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "wrong kind", value: map[string]any{"type": "combo", "controls": []any{}}},
		{name: "missing kind", value: map[string]any{"controls": []any{}}},
		{name: "array", value: []any{map[string]any{"type": "form"}}},
		{name: "scalar", value: "form"},
		{name: "nil", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.New().Convert(tt.value)
			if !errors.Is(err, compiler.ErrInvalidRoot) {
				t.Fatalf("expected ErrInvalidRoot, got %v", err)
			}
		})
	}
}

func TestConvert_RequiredFollowsSourceOrder(t *testing.T) {
	const fields = 6
	controls := make([]any, 0, fields)
	var wantRequired []string
	for i := fields; i > 0; i-- {
		name := fmt.Sprintf("f%d", i)
		required := i%2 == 0
		controls = append(controls, map[string]any{"type": "date", "name": name, "required": required})
		if required {
			wantRequired = append(wantRequired, name)
		}
	}

	got, err := compiler.New().Convert(map[string]any{"type": "form", "controls": controls})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(got.Properties) != fields {
		t.Fatalf("expected %d properties, got %d", fields, len(got.Properties))
	}
	if diff := cmp.Diff(wantRequired, got.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_LayoutWrappersVanish(t *testing.T) {
	form := amis.Node{
		"type": "form",
		"controls": []any{
			map[string]any{"type": "fieldSet", "controls": []any{
				map[string]any{"type": "grid", "columns": []any{
					map[string]any{"type": "Text", "name": "first", "required": true},
					map[string]any{"type": "Text", "name": "last"},
				}},
			}},
			map[string]any{"type": "combo", "name": "address", "controls": []any{
				map[string]any{"type": "grid", "columns": []any{
					map[string]any{"type": "city", "name": "city", "required": true},
				}},
			}},
		},
	}

	got, err := compiler.New().Convert(form)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := &jsonschema.Schema{
		Schema: jsonschema.Dialect,
		Type:   jsonschema.TypeObject,
		Properties: map[string]*jsonschema.Schema{
			"first": jsonschema.NewString(),
			"last":  jsonschema.NewString(),
			"address": {
				Type:       jsonschema.TypeObject,
				Properties: map[string]*jsonschema.Schema{"city": jsonschema.NewString()},
				Required:   []string{"city"},
			},
		},
		Required: []string{"first"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_DuplicateNamesLastWins(t *testing.T) {
	form := map[string]any{
		"type": "form",
		"controls": []any{
			map[string]any{"type": "Text", "name": "flag", "required": true},
			map[string]any{"type": "checkbox", "name": "flag", "required": true},
		},
	}

	got, err := compiler.New().Convert(form)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got.Properties["flag"].Type != jsonschema.TypeBoolean {
		t.Fatalf("expected last control to win, got %q", got.Properties["flag"].Type)
	}
	if diff := cmp.Diff([]string{"flag", "flag"}, got.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_EmptyForm(t *testing.T) {
	got, err := compiler.New().Convert(map[string]any{"type": "form"})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got.Properties != nil || got.Required != nil {
		t.Fatalf("expected no properties or required list, got %#v", got)
	}
	if got.Title != nil {
		t.Fatalf("expected no title, got %v", got.Title)
	}
}

func TestConvert_EncodesEmptyObjectKeys(t *testing.T) {
	tests := []struct {
		name string
		form map[string]any
		want string
	}{
		{
			name: "nothing required",
			form: map[string]any{
				"type":  "form",
				"title": "T",
				"controls": []any{
					map[string]any{"type": "Text", "name": "x"},
					map[string]any{"type": "combo", "name": "opts", "controls": []any{
						map[string]any{"type": "checkbox", "name": "on"},
					}},
				},
			},
			want: `{"title":"T","$schema":"http://json-schema.org/schema#","type":"object",` +
				`"properties":{"opts":{"type":"object","properties":{"on":{"type":"boolean"}},"required":[]},"x":{"type":"string"}},"required":[]}`,
		},
		{
			name: "empty controls",
			form: map[string]any{"type": "form", "controls": []any{}},
			want: `{"$schema":"http://json-schema.org/schema#","type":"object","properties":{},"required":[]}`,
		},
		{
			name: "no controls",
			form: map[string]any{"type": "form", "title": ""},
			want: `{"title":"","$schema":"http://json-schema.org/schema#","type":"object"}`,
		},
		{
			name: "combo without controls",
			form: map[string]any{"type": "form", "controls": []any{
				map[string]any{"type": "combo", "name": "extras"},
			}},
			want: `{"$schema":"http://json-schema.org/schema#","type":"object","properties":{"extras":{}},"required":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compiler.New().Convert(tt.form)
			if err != nil {
				t.Fatalf("convert: %v", err)
			}
			encoded, err := jsonschema.Marshal(got)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if diff := cmp.Diff(tt.want, string(encoded)); diff != "" {
				t.Fatalf("encoded schema mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_TitleCopiedAsDeclared(t *testing.T) {
	got, err := compiler.New(compiler.WithTitlePolicy(compiler.TitleSanitize)).Convert(map[string]any{"type": "form", "title": float64(42)})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if diff := cmp.Diff(any(float64(42)), got.Title); diff != "" {
		t.Fatalf("title mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_PropagatesFirstFailure(t *testing.T) {
	form := map[string]any{
		"type": "form",
		"controls": []any{
			map[string]any{"type": "Text", "name": "ok"},
			map[string]any{"type": "array", "name": "tags"},
			map[string]any{"type": "unknownWidget", "name": "later"},
		},
	}

	_, err := compiler.New().Convert(form)
	if !errors.Is(err, compiler.ErrMissingArrayItem) {
		t.Fatalf("expected ErrMissingArrayItem, got %v", err)
	}
	if !strings.Contains(err.Error(), "(field tags)") {
		t.Fatalf("error should name the failing field: %v", err)
	}
}

func TestConvert_TitlePolicy(t *testing.T) {
	form := map[string]any{"type": "form", "title": "<b>Sign up</b> &amp; <i>go</i>"}

	verbatim, err := compiler.New().Convert(form)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if verbatim.Title != "<b>Sign up</b> &amp; <i>go</i>" {
		t.Fatalf("verbatim title changed: %q", verbatim.Title)
	}

	sanitized, err := compiler.New(compiler.WithTitlePolicy(compiler.TitleSanitize)).Convert(form)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if sanitized.Title != "Sign up & go" {
		t.Fatalf("sanitized title mismatch: %q", sanitized.Title)
	}
}

func TestWithLogger_TracesDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	form := map[string]any{
		"type": "form",
		"controls": []any{
			map[string]any{"type": "fieldSet", "controls": []any{
				map[string]any{"type": "Text", "name": "x"},
			}},
		},
	}
	if _, err := compiler.New(compiler.WithLogger(logger)).Convert(form); err != nil {
		t.Fatalf("convert: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"flattened layout wrapper", "type=fieldSet", "dispatch control", "path=x"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}
