package amis

import (
	"fmt"
)

// Node is a single amis control as decoded from JSON or YAML. Callers must
// treat it as read-only.
type Node map[string]any

// AsNode converts a decoded value into a Node. Both Node and map[string]any
// are accepted; YAML documents decoded into map[any]any are not.
func AsNode(value any) (Node, bool) {
	switch v := value.(type) {
	case Node:
		return v, v != nil
	case map[string]any:
		return Node(v), v != nil
	default:
		return nil, false
	}
}

// Type returns the control's type tag, or an empty string when missing or not
// a string.
func (n Node) Type() string {
	return n.String(KeyType)
}

// Name returns the submitted field key of the control.
func (n Node) Name() string {
	return n.String(KeyName)
}

// HasName reports whether the control declares a non-empty name.
func (n Node) HasName() bool {
	return n.Name() != ""
}

// Required reports whether the control declares required: true.
func (n Node) Required() bool {
	v, ok := n[KeyRequired].(bool)
	return ok && v
}

// Title returns the declared title as is, whatever its kind, and whether the
// key is present.
func (n Node) Title() (any, bool) {
	return n.Get(KeyTitle)
}

// String reads key as a string.
func (n Node) String(key string) string {
	if n == nil {
		return ""
	}
	v, _ := n[key].(string)
	return v
}

// Has reports whether key is present with a non-nil value.
func (n Node) Has(key string) bool {
	if n == nil {
		return false
	}
	v, ok := n[key]
	return ok && v != nil
}

// Get returns the raw value stored under key.
func (n Node) Get(key string) (any, bool) {
	if n == nil {
		return nil, false
	}
	v, ok := n[key]
	return v, ok
}

// Children returns the child controls stored under key. ok is false when the
// key is absent or null. A value that is not a list, or a list entry that is
// not an object, yields an error naming the offending index.
func (n Node) Children(key string) ([]Node, bool, error) {
	raw, present := n.Get(key)
	if !present || raw == nil {
		return nil, false, nil
	}
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []Node:
		return append([]Node(nil), v...), true, nil
	case []map[string]any:
		out := make([]Node, len(v))
		for idx, entry := range v {
			out[idx] = Node(entry)
		}
		return out, true, nil
	default:
		return nil, true, fmt.Errorf("%s must be a list of controls, got %s", key, KindOf(raw))
	}

	out := make([]Node, 0, len(items))
	for idx, entry := range items {
		child, ok := AsNode(entry)
		if !ok {
			return nil, true, fmt.Errorf("%s[%d] must be an object, got %s", key, idx, KindOf(entry))
		}
		out = append(out, child)
	}
	return out, true, nil
}

// KindOf names the dynamic kind of a decoded value the way a JSON reader
// would describe it.
func KindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any, []Node, []map[string]any:
		return "array"
	case Node, map[string]any, map[any]any:
		return "object"
	}
	if IsNumber(value) {
		return "number"
	}
	return fmt.Sprintf("%T", value)
}
