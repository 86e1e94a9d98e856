package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	tverrors "github.com/conneroisu/tvdocs/internal/errors"
	"github.com/conneroisu/tvdocs/pkg/logo"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"v"},
	Short:   "List the logo kinds",
	Long: `List every logo kind in resolution priority order with the marks it
renders, their viewBox, default size and base classes.

Examples:
  tvdocs variants              # Table
  tvdocs variants -o json      # JSON
  tvdocs variants -o yaml      # YAML`,
	RunE: runVariants,
}

var variantsOutputFlags *OutputFlags

func init() {
	rootCmd.AddCommand(variantsCmd)

	variantsOutputFlags = AddOutputFlags(variantsCmd, "table", false)
}

// kindInfo is the listing row for one kind.
type kindInfo struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Flag     string     `json:"flag" yaml:"flag"`
	Priority int        `json:"priority" yaml:"priority"`
	Marks    []markInfo `json:"marks" yaml:"marks"`
}

type markInfo struct {
	Kind        string   `json:"kind" yaml:"kind"`
	ViewBox     string   `json:"view_box" yaml:"view_box"`
	DefaultSize float64  `json:"default_size,omitempty" yaml:"default_size,omitempty"`
	Classes     []string `json:"classes" yaml:"classes"`
}

// requestFor returns the minimal request resolving to kind.
func requestFor(kind logo.Kind) logo.Request {
	switch kind {
	case logo.KindOutlinedSmall:
		return logo.Request{Outlined: true}
	case logo.KindAuto:
		return logo.Request{Auto: true}
	case logo.KindSmall:
		return logo.Request{Small: true}
	default:
		return logo.Request{}
	}
}

func flagFor(kind logo.Kind) string {
	switch kind {
	case logo.KindOutlinedSmall:
		return "--outlined"
	case logo.KindAuto:
		return "--auto"
	case logo.KindSmall:
		return "--small"
	default:
		return "(none)"
	}
}

func collectKinds() []kindInfo {
	infos := make([]kindInfo, 0, len(logo.Kinds))
	for i, kind := range logo.Kinds {
		info := kindInfo{Kind: kind.String(), Flag: flagFor(kind), Priority: i + 1}
		for _, v := range logo.Variants(requestFor(kind)) {
			info.Marks = append(info.Marks, markInfo{
				Kind:        v.Kind.String(),
				ViewBox:     v.ViewBox,
				DefaultSize: v.DefaultSize,
				Classes:     strings.Fields(v.BaseClass),
			})
		}
		infos = append(infos, info)
	}
	return infos
}

func runVariants(cmd *cobra.Command, args []string) error {
	if err := ValidateFormat(variantsOutputFlags.Format, []string{"table", "json", "yaml"}); err != nil {
		return err
	}

	infos := collectKinds()
	out := cmd.OutOrStdout()

	var err error
	switch strings.ToLower(variantsOutputFlags.Format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(infos)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err = enc.Encode(infos); err == nil {
			err = enc.Close()
		}
	default:
		err = outputVariantsTable(out, infos)
	}
	if err != nil {
		return tverrors.NewInternalError(tverrors.ErrCodeInternalError, "cannot write variant listing", err)
	}
	return nil
}

func outputVariantsTable(w io.Writer, infos []kindInfo) error {
	title := cases.Title(language.English)
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "KIND", "FLAG", "MARK", "VIEWBOX", "DEFAULT", "CLASSES")

	for _, info := range infos {
		for _, m := range info.Marks {
			size := "-"
			if m.DefaultSize != 0 {
				size = fmt.Sprintf("%gx%g", m.DefaultSize, m.DefaultSize)
			}
			t.Row(
				fmt.Sprint(info.Priority),
				title.String(info.Kind),
				info.Flag,
				title.String(m.Kind),
				m.ViewBox,
				size,
				strings.Join(m.Classes, " "),
			)
		}
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}
