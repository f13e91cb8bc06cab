// Package recipe provides the parsed recipe document model: an ordered YAML
// mapping plus the accessors that normalize the document's heterogeneous
// section shapes (mapping-or-list) into canonical forms.
package recipe

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Mapping is an ordered YAML mapping. Key order is preserved from the source
// text, which the key-ordering lint rules depend on.
type Mapping []yaml.MapItem

// Document is a parsed recipe: the ordered top-level mapping from section
// name to section content.
type Document = Mapping

// Get returns the value for key and whether the key is present.
func (m Mapping) Get(key string) (any, bool) {
	for _, item := range m {
		if keyString(item.Key) == key {
			return item.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (m Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the mapping's keys in document order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, item := range m {
		keys = append(keys, keyString(item.Key))
	}
	return keys
}

// String returns the value for key coerced to a string. Missing keys and
// non-scalar values yield the empty string.
func (m Mapping) String(key string) string {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case yaml.MapSlice, []any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}

// AsMapping converts a raw decoded YAML value to a Mapping if it is one.
func AsMapping(v any) (Mapping, bool) {
	switch ms := v.(type) {
	case yaml.MapSlice:
		return Mapping(ms), true
	case Mapping:
		return ms, true
	default:
		return nil, false
	}
}

// typeName names a decoded YAML value the way recipe authors see it.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case yaml.MapSlice, Mapping:
		return "dictionary"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	default:
		return fmt.Sprintf("%T", v)
	}
}
