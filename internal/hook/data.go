package hook

import "encoding/json"

// StringField retrieves a string value from the event's data bag.
// Returns ("", false) if the key is missing or the value is not a string.
func (e Event) StringField(key string) (string, bool) {
	v, ok := e.Data[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// FloatField retrieves a numeric value from the data bag. JSON numbers
// unmarshal to float64 by default in Go.
func (e Event) FloatField(key string) (float64, bool) {
	v, ok := e.Data[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// BoolField retrieves a boolean value from the data bag.
func (e Event) BoolField(key string) (bool, bool) {
	v, ok := e.Data[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// NestedField retrieves a nested map from the data bag.
func (e Event) NestedField(key string) (map[string]any, bool) {
	v, ok := e.Data[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// TextField renders a data bag value as display text. Scalars are formatted
// directly; maps and slices are JSON-stringified rather than rejected, since
// tool inputs and results arrive in both shapes.
func (e Event) TextField(key string) (string, bool) {
	v, ok := e.Data[key]
	if !ok || v == nil {
		return "", false
	}
	return Stringify(v), true
}

// Truthy reports whether a data bag value carries signal. Mirrors the
// backend's loose semantics: nil, false, zero, and "" are all absent.
func Truthy(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case float64:
		return typed != 0
	default:
		return true
	}
}

// IsScalar reports whether a data bag value is a renderable scalar.
// Objects and arrays are never rendered as chip values.
func IsScalar(v any) bool {
	switch v.(type) {
	case string, float64, bool:
		return true
	default:
		return false
	}
}

// Stringify renders any data bag value as text. Non-scalar values are
// serialized as compact JSON.
func Stringify(v any) string {
	switch typed := v.(type) {
	case string:
		return typed
	case float64:
		return formatFloat(typed)
	case bool:
		if typed {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
