// Package classnames merges class lists for rendered components.
//
// Merge accepts the same arguments as templ.Classes: plain strings,
// templ.KeyValue[string, bool] conditionals, and nested CSSClasses. Empty
// strings and whitespace-only entries are dropped so that an optional caller
// class never leaves a trailing space behind.
package classnames

import (
	"strings"

	"github.com/a-h/templ"
)

// Merge joins the given class entries, in order, into one space-separated
// string. Later entries never replace earlier ones.
func Merge(entries ...any) string {
	filtered := make([]any, 0, len(entries))
	for _, e := range entries {
		if s, ok := e.(string); ok {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			filtered = append(filtered, s)
			continue
		}
		filtered = append(filtered, e)
	}

	return strings.Join(strings.Fields(templ.Classes(filtered...).String()), " ")
}

// When returns a conditional entry for Merge.
func When(class string, ok bool) templ.KeyValue[string, bool] {
	return templ.KV(class, ok)
}

// Tokens splits a class attribute value into its individual classes.
func Tokens(class string) []string {
	return strings.Fields(class)
}
