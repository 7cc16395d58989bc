package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

// ParseStructTag parses a jot struct tag into key-value pairs.
// Tags are comma-separated: `jot:"field=name,omit"`. Bare words are
// flags and map to an empty value.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, found := strings.Cut(part, "=")
		if found && val == "" {
			return nil, fmt.Errorf("empty value for tag key %q", key)
		}
		result[key] = val
	}
	return result, nil
}

// fieldName returns the object key for a struct field and whether the
// field participates at all. `jot:"-"` omits; `jot:"field=x"` renames.
func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("jot")
	if tag == "-" {
		return "", false
	}
	name := field.Name
	if tag != "" {
		parsed, err := ParseStructTag(tag)
		if err == nil {
			if _, omit := parsed["omit"]; omit {
				return "", false
			}
			if renamed, ok := parsed["field"]; ok && renamed != "" {
				name = renamed
			}
		}
	}
	return name, true
}
