package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields is a decoded JSON attribute bag.
// Values are the types produced by encoding/json: map[string]any, []any,
// string, float64, bool and nil.
type Fields map[string]any

// Lookup walks a path of object keys and reports whether it exists.
func (f Fields) Lookup(path ...string) (any, bool) {
	var cur any = map[string]any(f)
	for _, key := range path {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether the path exists.
func (f Fields) Has(path ...string) bool {
	_, ok := f.Lookup(path...)
	return ok
}

// Object returns the object at path.
func (f Fields) Object(path ...string) (Fields, bool) {
	v, ok := f.Lookup(path...)
	if !ok {
		return nil, false
	}
	obj, ok := asObject(v)
	return Fields(obj), ok
}

// String returns the value at path as a string. Objects of the form
// {"value": x} are unwrapped, as are numbers.
func (f Fields) String(path ...string) (string, bool) {
	v, ok := f.Lookup(path...)
	if !ok {
		return "", false
	}
	return scalarString(unwrapValue(v))
}

// Int returns the value at path as an integer. Objects of the form
// {"value": x} are unwrapped and numeric strings are parsed.
func (f Fields) Int(path ...string) (int, bool) {
	v, ok := f.Lookup(path...)
	if !ok {
		return 0, false
	}
	switch n := unwrapValue(v).(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		i, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(n), "+"))
		return i, err == nil
	}
	return 0, false
}

// Strings returns a list at path. Objects of the form {"value": [...]} are
// unwrapped; object elements contribute their "value", "type" or "label" key.
// A comma separated string is split. An empty list yields nil.
func (f Fields) Strings(path ...string) []string {
	v, ok := f.Lookup(path...)
	if !ok {
		return nil
	}
	v = unwrapValue(v)
	switch list := v.(type) {
	case []any:
		var out []string
		for _, item := range list {
			if s, ok := elementString(item); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return nil
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case Fields:
		return obj, true
	}
	return nil, false
}

func unwrapValue(v any) any {
	if obj, ok := asObject(v); ok {
		if inner, ok := obj["value"]; ok {
			return inner
		}
	}
	return v
}

func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

func elementString(v any) (string, bool) {
	if obj, ok := asObject(v); ok {
		typ, _ := scalarString(obj["type"])
		val, hasVal := scalarString(obj["value"])
		switch {
		case typ != "" && hasVal:
			return fmt.Sprintf("%s %s", typ, val), true
		case typ != "":
			return typ, true
		case hasVal:
			return val, true
		}
		return scalarString(obj["label"])
	}
	return scalarString(v)
}
