package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	tverrors "github.com/conneroisu/tvdocs/internal/errors"
	"github.com/conneroisu/tvdocs/pkg/logo"
)

// LogoFlags holds the flags describing one logo request.
type LogoFlags struct {
	Outlined bool
	Auto     bool
	Small    bool
	Size     float64
	Width    float64
	Height   float64
	Class    string
	Attrs    map[string]string
}

// OutputFlags holds output selection flags.
type OutputFlags struct {
	Format string
	File   string
}

// AddLogoFlags registers the logo request flags on cmd.
func AddLogoFlags(cmd *cobra.Command) *LogoFlags {
	flags := &LogoFlags{}
	addLogoFlags(cmd.Flags(), flags)
	return flags
}

func addLogoFlags(fs *pflag.FlagSet, f *LogoFlags) {
	fs.BoolVar(&f.Outlined, "outlined", false, "Render the outlined small mark (wins over --auto and --small)")
	fs.BoolVarP(&f.Auto, "auto", "a", false, "Render the responsive pair (wins over --small)")
	fs.BoolVarP(&f.Small, "small", "s", false, "Render the small mark")
	fs.Float64Var(&f.Size, "size", 0, "Width and height fallback for the small marks")
	fs.Float64Var(&f.Width, "width", 0, "Explicit width")
	fs.Float64Var(&f.Height, "height", 0, "Explicit height")
	fs.StringVarP(&f.Class, "class", "c", "", "Classes appended to the base classes")
	fs.StringToStringVar(&f.Attrs, "attr", nil, "Extra root attribute as key=value (repeatable, overrides computed attributes)")
}

// AddOutputFlags registers output flags on cmd. fileFlag adds --out-file.
func AddOutputFlags(cmd *cobra.Command, defaultFormat string, fileFlag bool) *OutputFlags {
	flags := &OutputFlags{}
	cmd.Flags().StringVarP(&flags.Format, "output", "o", defaultFormat, "Output format")
	if fileFlag {
		cmd.Flags().StringVarP(&flags.File, "out-file", "f", "", "Write to this file instead of stdout")
	}
	return flags
}

// Request converts the flags into a logo request. extraClass is appended to
// the flag class.
func (f *LogoFlags) Request(extraClass string) (logo.Request, error) {
	for name, v := range map[string]float64{"size": f.Size, "width": f.Width, "height": f.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return logo.Request{}, tverrors.NewValidationError(tverrors.ErrCodeInvalidFlag,
				fmt.Sprintf("--%s must be a finite number", name))
		}
	}

	var attrs templ.Attributes
	if len(f.Attrs) > 0 {
		attrs = make(templ.Attributes, len(f.Attrs))
		for k, v := range f.Attrs {
			k = strings.TrimSpace(k)
			if !logo.ValidAttributeName(k) {
				return logo.Request{}, tverrors.NewValidationError(tverrors.ErrCodeInvalidFlag,
					fmt.Sprintf("--attr key %q is not a valid attribute name", k))
			}
			attrs[k] = v
		}
	}

	class := strings.TrimSpace(strings.Join([]string{f.Class, extraClass}, " "))

	return logo.Request{
		Outlined: f.Outlined,
		Auto:     f.Auto,
		Small:    f.Small,
		Size:     f.Size,
		Width:    f.Width,
		Height:   f.Height,
		Class:    class,
		Attrs:    attrs,
	}, nil
}

// ValidateFormat checks format against the allowed values and suggests the
// closest one on a typo.
func ValidateFormat(format string, allowed []string) error {
	lower := strings.ToLower(format)
	for _, a := range allowed {
		if lower == a {
			return nil
		}
	}

	msg := fmt.Sprintf("unsupported format %q (supported: %s)", format, strings.Join(allowed, ", "))
	if s := closest(lower, allowed); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return tverrors.NewValidationError(tverrors.ErrCodeInvalidFlag, msg)
}

// closest returns the candidate within edit distance 2 of s, if any.
func closest(s string, candidates []string) string {
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := levenshtein(s, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
