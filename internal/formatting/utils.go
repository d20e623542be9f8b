package formatting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// MarshalPretty encodes v as JSON indented by two spaces. HTML characters
// are left as is and there is no trailing newline.
func MarshalPretty(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// PrettyJSON is MarshalPretty that falls back to fmt formatting on error.
func PrettyJSON(v interface{}) string {
	s, err := MarshalPretty(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return s
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
