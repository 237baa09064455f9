package jsonschema

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

type wireSchema struct {
	Title      gojson.RawMessage   `json:"title,omitempty"`
	Schema     string              `json:"$schema,omitempty"`
	Type       Type                `json:"type,omitempty"`
	Properties *map[string]*Schema `json:"properties,omitempty"`
	Required   *[]string           `json:"required,omitempty"`
	Items      *Schema             `json:"items,omitempty"`
}

// MarshalJSON keeps allocated but empty Properties and Required maps in the
// output and drops nil ones.
func (s Schema) MarshalJSON() ([]byte, error) {
	out := wireSchema{
		Schema: s.Schema,
		Type:   s.Type,
		Items:  s.Items,
	}
	if s.Title != nil {
		title, err := gojson.Marshal(s.Title)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: encode title: %w", err)
		}
		out.Title = title
	}
	if s.Properties != nil {
		out.Properties = &s.Properties
	}
	if s.Required != nil {
		out.Required = &s.Required
	}
	return gojson.Marshal(out)
}

// Marshal encodes s as compact JSON. Property keys are emitted in sorted order.
func Marshal(s *Schema) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("jsonschema: schema is nil")
	}
	return gojson.Marshal(s)
}

// MarshalIndent encodes s as indented JSON using two spaces.
func MarshalIndent(s *Schema) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("jsonschema: schema is nil")
	}
	return gojson.MarshalIndent(s, "", "  ")
}

// Unmarshal decodes a schema previously produced by Marshal.
func Unmarshal(data []byte) (*Schema, error) {
	var out Schema
	if err := gojson.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("jsonschema: decode: %w", err)
	}
	return &out, nil
}
