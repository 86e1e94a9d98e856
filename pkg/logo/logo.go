// Package logo renders the Tailwind Variants brand mark as templ components.
//
// A Request carries three flags (Outlined, Auto, Small) plus sizing and styling
// overrides. Resolve maps a Request to exactly one Kind using a fixed priority
// order:
//
//	Outlined > Auto > Small > Large
//
// KindAuto renders the Small and Large variants side by side inside a <div>.
// Both carry data-auto="true" and their breakpoint classes decide which one is
// visible, so no viewport detection happens here.
//
// Usage:
//
//	err := logo.Logo(logo.Request{Height: 30}).Render(ctx, w)
package logo

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Request describes one logo render. Zero numeric fields are treated as unset.
type Request struct {
	Outlined bool
	Auto     bool
	Small    bool

	Size   float64
	Width  float64
	Height float64

	// Class is appended to the variant's base classes.
	Class string

	// Attrs are copied onto the root <svg> after the computed attributes.
	// On a key collision the value in Attrs wins.
	Attrs templ.Attributes
}

// Kind is the closed set of renderings a Request can resolve to.
type Kind int

const (
	KindLarge Kind = iota
	KindSmall
	KindOutlinedSmall
	KindAuto
)

// Kinds lists every Kind in resolution priority order.
var Kinds = []Kind{KindOutlinedSmall, KindAuto, KindSmall, KindLarge}

// String returns the string representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindLarge:
		return "large"
	case KindSmall:
		return "small"
	case KindOutlinedSmall:
		return "outlined-small"
	case KindAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Resolve picks the Kind for r. The first matching rule wins and conflicting
// flags are not an error.
func Resolve(r Request) Kind {
	switch {
	case r.Outlined:
		return KindOutlinedSmall
	case r.Auto:
		return KindAuto
	case r.Small:
		return KindSmall
	default:
		return KindLarge
	}
}

// Variants returns the variants r renders, in document order.
func Variants(r Request) []*Variant {
	switch Resolve(r) {
	case KindOutlinedSmall:
		return []*Variant{OutlinedSmallVariant}
	case KindAuto:
		return []*Variant{SmallVariant, LargeVariant}
	case KindSmall:
		return []*Variant{SmallVariant}
	default:
		return []*Variant{LargeVariant}
	}
}

// Logo returns the component for r.
func Logo(r Request) templ.Component {
	kind := Resolve(r)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch kind {
		case KindOutlinedSmall:
			// The outlined mark never carries the auto marker.
			r.Auto = false
			return OutlinedSmallVariant.Render(r).Render(ctx, w)
		case KindAuto:
			if _, err := io.WriteString(w, "<div>"); err != nil {
				return err
			}
			if err := SmallVariant.Render(r).Render(ctx, w); err != nil {
				return err
			}
			if err := LargeVariant.Render(r).Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, "</div>")
			return err
		case KindSmall:
			return SmallVariant.Render(r).Render(ctx, w)
		default:
			return LargeVariant.Render(r).Render(ctx, w)
		}
	})
}

// Small renders the filled small mark regardless of r's flags, honoring r.Auto.
func Small(r Request) templ.Component {
	return SmallVariant.Render(r)
}

// SmallOutlined renders the outlined small mark regardless of r's flags.
func SmallOutlined(r Request) templ.Component {
	return OutlinedSmallVariant.Render(r)
}

// Large renders the wordmark regardless of r's flags, honoring r.Auto.
func Large(r Request) templ.Component {
	return LargeVariant.Render(r)
}
