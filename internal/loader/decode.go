package loader

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-amisschema/pkg/schema"
)

// Decode parses a document into generic values: objects become
// map[string]any, lists []any, numbers float64 (JSON) or int/float64 (YAML).
// JSON is tried first unless the location names a YAML file; either format
// falls back to the other.
func Decode(doc schema.Document) (any, error) {
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, fmt.Errorf("amis loader: %s is empty", doc.Location())
	}

	decoders := []func([]byte) (any, error){decodeJSON, decodeYAML}
	if doc.Format() == schema.FormatYAML {
		decoders = []func([]byte) (any, error){decodeYAML, decodeJSON}
	}

	var firstErr error
	for _, decode := range decoders {
		value, err := decode(raw)
		if err == nil {
			return value, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, fmt.Errorf("amis loader: parse %s: invalid JSON or YAML: %w", doc.Location(), firstErr)
}

func decodeJSON(raw []byte) (any, error) {
	var out any
	if err := gojson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeYAML(raw []byte) (any, error) {
	var out any
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return normalizeYAML(out), nil
}

// normalizeYAML rewrites map[any]any nodes, produced for non-string keys, into
// map[string]any so the compiler sees a single object representation.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeYAML(item)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}
		return out
	case []any:
		for idx, item := range v {
			v[idx] = normalizeYAML(item)
		}
		return v
	default:
		return value
	}
}
