//go:build property
// +build property

package logo

import (
	"bytes"
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/conneroisu/tvdocs/internal/markup"
)

func renderString(r Request) (string, error) {
	var buf bytes.Buffer
	if err := Logo(r).Render(context.Background(), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func genRequest() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Float64Range(0, 512),
		gen.Float64Range(0, 512),
		gen.Float64Range(0, 512),
		gen.AlphaString(),
	).Map(func(values []interface{}) Request {
		return Request{
			Outlined: values[0].(bool),
			Auto:     values[1].(bool),
			Small:    values[2].(bool),
			Size:     values[3].(float64),
			Width:    values[4].(float64),
			Height:   values[5].(float64),
			Class:    values[6].(string),
		}
	})
}

// TestSelectionProperties checks the precedence contract over arbitrary flag
// combinations.
func TestSelectionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("outlined renders exactly one unmarked outlined mark", prop.ForAll(
		func(r Request) bool {
			r.Outlined = true
			out, err := renderString(r)
			if err != nil {
				return false
			}
			elements, err := markup.Inspect(out)
			if err != nil || len(elements) != 1 {
				return false
			}
			return !elements[0].Has("data-auto") &&
				elements[0].Attr("viewBox") == OutlinedSmallVariant.ViewBox &&
				bytes.Contains([]byte(out), []byte(`stroke-width="10"`))
		},
		genRequest(),
	))

	properties.Property("auto without outlined renders small then large, both marked", prop.ForAll(
		func(r Request) bool {
			r.Outlined = false
			r.Auto = true
			out, err := renderString(r)
			if err != nil {
				return false
			}
			elements, err := markup.Inspect(out)
			if err != nil || len(elements) != 2 {
				return false
			}
			return elements[0].Attr("viewBox") == SmallVariant.ViewBox &&
				elements[1].Attr("viewBox") == LargeVariant.ViewBox &&
				elements[0].Attr("data-auto") == "true" &&
				elements[1].Attr("data-auto") == "true"
		},
		genRequest(),
	))

	properties.Property("variant count matches resolved kind", prop.ForAll(
		func(r Request) bool {
			out, err := renderString(r)
			if err != nil {
				return false
			}
			elements, err := markup.Inspect(out)
			if err != nil {
				return false
			}
			want := 1
			if Resolve(r) == KindAuto {
				want = 2
			}
			return len(elements) == want && len(Variants(r)) == want
		},
		genRequest(),
	))

	properties.Property("rendering is deterministic", prop.ForAll(
		func(r Request) bool {
			a, errA := renderString(r)
			b, errB := renderString(r)
			return errA == nil && errB == nil && a == b
		},
		genRequest(),
	))

	properties.TestingRun(t)
}

// TestSizingProperties checks independent width and height defaulting for the
// small marks.
func TestSizingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("explicit dimension beats size beats default", prop.ForAll(
		func(size, width, height float64) bool {
			for _, v := range []*Variant{SmallVariant, OutlinedSmallVariant} {
				w, h := v.Dimensions(Request{Size: size, Width: width, Height: height})
				if w != firstSet(width, size, DefaultSmallSize) || h != firstSet(height, size, DefaultSmallSize) {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 256),
		gen.Float64Range(0, 256),
		gen.Float64Range(0, 256),
	))

	properties.Property("caller class is kept alongside base classes", prop.ForAll(
		func(class string) bool {
			if class == "" {
				return true
			}
			elements, err := func() ([]markup.Element, error) {
				out, err := renderString(Request{Small: true, Class: class})
				if err != nil {
					return nil, err
				}
				return markup.Inspect(out)
			}()
			if err != nil || len(elements) != 1 {
				return false
			}
			e := elements[0]
			return e.HasClass("block") && e.HasClass("text-foreground") && e.HasClass(class)
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
