package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tverrors "github.com/conneroisu/tvdocs/internal/errors"
	"github.com/conneroisu/tvdocs/pkg/logo"
)

var renderCmd = &cobra.Command{
	Use:     "render",
	Aliases: []string{"r"},
	Short:   "Render one logo request",
	Long: `Render the logo for one request and print the markup.

Flag precedence: --outlined wins over --auto, which wins over --small; with
none of them the wordmark is rendered. Conflicting flags are not an error.

The small marks default to 25x25; --width and --height win over --size,
each defaulted independently. The wordmark has no default size.

Examples:
  tvdocs render                                  # Wordmark
  tvdocs render --height 30                      # Navbar wordmark
  tvdocs render -s --size 50                     # 50x50 small mark
  tvdocs render --outlined -c opacity-70         # Outlined mark with extra class
  tvdocs render -a -f public/logo.html           # Responsive pair to a file
  tvdocs render --attr role=img --attr aria-label="Tailwind Variants"`,
	RunE: runRender,
}

var (
	renderLogoFlags   *LogoFlags
	renderOutputFlags *OutputFlags
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderLogoFlags = AddLogoFlags(renderCmd)
	renderOutputFlags = AddOutputFlags(renderCmd, "markup", true)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := ValidateFormat(renderOutputFlags.Format, []string{"markup"}); err != nil {
		return err
	}

	req, err := renderLogoFlags.Request(cfg.Logo.Class)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := logo.Logo(req).Render(cmd.Context(), &buf); err != nil {
		return tverrors.NewRenderError(tverrors.ErrCodeRenderFailed, "cannot render logo", err)
	}

	logger.Debug(cmd.Context(), "Rendered logo",
		"kind", logo.Resolve(req).String(), "bytes", buf.Len())

	if renderOutputFlags.File == "" {
		buf.WriteString("\n")
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(renderOutputFlags.File, buf.Bytes(), 0o644); err != nil {
		return tverrors.NewIOError(tverrors.ErrCodeWriteFailed, "cannot write output", err).
			WithFile(renderOutputFlags.File)
	}
	printSuccess(cmd.ErrOrStderr(), "Wrote %s (%s)", renderOutputFlags.File, logo.Resolve(req))
	return nil
}
