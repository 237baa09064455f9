package jsonschema

import "fmt"

// Dialect identifies the JSON Schema version emitted at the document root.
const Dialect = "http://json-schema.org/schema#"

// Type is the JSON Schema primitive type tag.
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
)

// Schema is one node of the output tree. Object nodes populate Properties and
// Required, array nodes populate Items. Title and Schema are only set on the
// document root; Title holds the form's title value as declared.
//
// An empty Schema (no type) is valid and accepts any value; it is produced for
// combos that declare no controls.
//
// Properties and Required are encoded whenever they are non-nil, so an object
// without required fields still carries "required": [].
type Schema struct {
	Title      any                `json:"title,omitempty"`
	Schema     string             `json:"$schema,omitempty"`
	Type       Type               `json:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
}

// TitleText returns the title as display text. Non-string titles are
// formatted with fmt.
func (s *Schema) TitleText() string {
	if s == nil || s.Title == nil {
		return ""
	}
	if text, ok := s.Title.(string); ok {
		return text
	}
	return fmt.Sprint(s.Title)
}

// NewObject returns an object schema with empty, non-nil containers.
func NewObject() *Schema {
	return &Schema{
		Type:       TypeObject,
		Properties: make(map[string]*Schema),
		Required:   []string{},
	}
}

// NewArray wraps items in an array schema.
func NewArray(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

func NewString() *Schema  { return &Schema{Type: TypeString} }
func NewNumber() *Schema  { return &Schema{Type: TypeNumber} }
func NewBoolean() *Schema { return &Schema{Type: TypeBoolean} }

// IsEmpty reports whether s constrains nothing.
func (s *Schema) IsEmpty() bool {
	return s == nil || (s.Type == "" && len(s.Properties) == 0 && len(s.Required) == 0 && s.Items == nil)
}
