package logo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Attribute is a single root element attribute. Value follows templ
// conventions: strings are escaped, true renders a bare attribute, false and
// nil are omitted, numbers are printed without trailing zeros.
type Attribute struct {
	Key   string
	Value any
}

// MergeAttributes overlays caller on computed. A caller key that already
// exists replaces the computed value in place; new keys are appended in sorted
// order so the output is stable. Neither input is modified.
func MergeAttributes(computed []Attribute, caller templ.Attributes) []Attribute {
	merged := make([]Attribute, len(computed), len(computed)+len(caller))
	copy(merged, computed)
	if len(caller) == 0 {
		return merged
	}

	index := make(map[string]int, len(merged))
	for i, a := range merged {
		index[a.Key] = i
	}

	keys := make([]string, 0, len(caller))
	for k := range caller {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if i, ok := index[k]; ok {
			merged[i].Value = caller[k]
			continue
		}
		merged = append(merged, Attribute{Key: k, Value: caller[k]})
	}

	return merged
}

// ValidAttributeName reports whether name can be written as an attribute key.
// Whitespace, quotes, '<', '>', '/' and '=' would end the key early and let the
// rest of it read as a separate attribute.
func ValidAttributeName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\n\r\f\"'<>/=")
}

// Lookup returns the value for key and whether the attribute will be rendered.
func Lookup(attrs []Attribute, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key != key {
			continue
		}
		return attributeValue(a.Value)
	}
	return "", false
}

func writeAttributes(sb *strings.Builder, attrs []Attribute) {
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		if b, ok := a.Value.(bool); ok {
			if b {
				sb.WriteString(" ")
				sb.WriteString(templ.EscapeString(a.Key))
			}
			continue
		}
		v, ok := attributeValue(a.Value)
		if !ok {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(templ.EscapeString(a.Key))
		sb.WriteString(`="`)
		sb.WriteString(templ.EscapeString(v))
		sb.WriteString(`"`)
	}
}

func attributeValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		if val {
			return "", true
		}
		return "", false
	case float64:
		return formatNumber(val), true
	case float32:
		return formatNumber(float64(val)), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return fmt.Sprint(val), true
	}
}
