package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/tvdocs/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for tvdocs.

Examples:
  tvdocs version                # Version, commit, Go version and platform
  tvdocs version --short        # Version only
  tvdocs version --format json  # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVar(&versionFormat, "format", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	if err := ValidateFormat(versionFormat, []string{"text", "json"}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if versionFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(version.GetBuildInfo())
	}

	if versionShort {
		_, err := fmt.Fprintln(out, version.GetShortVersion())
		return err
	}
	return outputVersionText(out, version.GetBuildInfo())
}

func outputVersionText(w io.Writer, info *version.BuildInfo) error {
	fmt.Fprintf(w, "tvdocs %s", info.Version)
	if info.GitCommit != "unknown" && len(info.GitCommit) >= 7 {
		fmt.Fprintf(w, " (%s)", info.GitCommit[:7])
	}
	if info.Dirty {
		fmt.Fprint(w, " (dirty)")
	}
	fmt.Fprintln(w)

	if !info.BuildTime.IsZero() {
		fmt.Fprintf(w, "Built: %s\n", info.BuildTime.Format(time.RFC3339))
	}
	_, err := fmt.Fprintf(w, "Go: %s\nPlatform: %s\n", info.GoVersion, info.Platform)
	return err
}
