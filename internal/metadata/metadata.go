// Package metadata reads the JSON sidecar records gallery-dl writes
// next to downloaded media, and the line-delimited streams produced
// by its --dump-json mode.
package metadata

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/spf13/cast"
)

// CategoryTwitter is the gallery-dl extractor category this tool renders.
const CategoryTwitter = "twitter"

// Record is one decoded sidecar object. Values keep their JSON shapes;
// numbers stay json.Number so 64-bit ids keep their exact text.
type Record map[string]any

// Load reads one sidecar file. ok is false when the file cannot be
// read or does not hold a single JSON object; callers skip such files
// rather than failing a whole build.
func Load(path string) (Record, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return Decode(data)
}

// Decode decodes data as a single JSON object.
func Decode(data []byte) (Record, bool) {
	v, ok := decodeValue(data)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}

// decodeValue decodes exactly one JSON value and rejects trailing content.
func decodeValue(data []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if dec.More() {
		return nil, false
	}
	return v, true
}

// IsTwitter reports whether the record came from the twitter extractor.
func (r Record) IsTwitter() bool {
	return r.Str("category") == CategoryTwitter
}

// Str returns the first of keys whose value is present and non-empty,
// coerced to a string. Zero numbers, empty strings and collections,
// false, and null all count as absent.
func (r Record) Str(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || !truthy(v) {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil || s == "" {
			continue
		}
		return s
	}
	return ""
}

// Int64 reads key as an integer count. ok is false when the field is
// missing, null, or not numeric.
func (r Record) Int64(key string) (int64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Strings reads key as a list of strings. A bare string becomes a
// single-element list; empty elements are dropped.
func (r Record) Strings(key string) []string {
	switch v := r[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		var out []string
		for _, el := range v {
			if !truthy(el) {
				continue
			}
			s, err := cast.ToStringE(el)
			if err != nil || s == "" {
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}

// Sub returns a nested object, or nil when the field is missing or not
// an object. Accessors on a nil Record return zero values.
func (r Record) Sub(key string) Record {
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return nil
}

// truthy is the presence test shared by the accessors.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}
