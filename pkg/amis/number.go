package amis

import "encoding/json"

// IsNumber reports whether value holds any numeric representation produced by
// the JSON and YAML decoders (float64, int, json.Number, ...).
func IsNumber(value any) bool {
	switch value.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return true
	default:
		return false
	}
}
