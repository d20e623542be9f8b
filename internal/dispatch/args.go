package dispatch

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Args is the untyped argument map of a tool call.
type Args map[string]any

// String returns the argument as a string. Numbers are formatted without
// exponent so that numeric IDs survive; absent or null values yield "".
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// OptionalString returns the argument and whether it was present and non-empty.
func (a Args) OptionalString(key string) (string, bool) {
	if _, ok := a[key]; !ok {
		return "", false
	}
	s := a.String(key)
	return s, s != ""
}

// OptionalBool returns a pointer to the argument when it is a boolean.
// The strings "true" and "false" are accepted as well.
func (a Args) OptionalBool(key string) *bool {
	switch v := a[key].(type) {
	case bool:
		return &v
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil
		}
		return &b
	default:
		return nil
	}
}

// StringsOK returns the argument as a string slice and whether it was an
// array at all. Non-string elements are formatted with String semantics; an
// empty array yields a non-nil empty slice and true.
func (a Args) StringsOK(key string) ([]string, bool) {
	switch v := a[key].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, Args{"v": item}.String("v"))
		}
		return out, true
	default:
		return nil, false
	}
}

// Raw returns the argument untouched.
func (a Args) Raw(key string) any {
	return a[key]
}

// Map returns the arguments as a plain map, the shape sent as a request body.
func (a Args) Map() map[string]any {
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Without returns a copy of the arguments lacking the given keys.
func (a Args) Without(keys ...string) map[string]any {
	out := a.Map()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
