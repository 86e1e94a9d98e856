package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/tvdocs/internal/config"
	tverrors "github.com/conneroisu/tvdocs/internal/errors"
	"github.com/conneroisu/tvdocs/internal/export"
	"github.com/conneroisu/tvdocs/internal/logging"
	"github.com/conneroisu/tvdocs/internal/manifest"
	"github.com/conneroisu/tvdocs/internal/watcher"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"e"},
	Short:   "Export the site's logo usages as static assets",
	Long: `Render every entry of a manifest to <out>/<name>.svg (or .html for the
responsive pair). Without --manifest the built-in site usages are exported:
hero, navbar, mark, mark-outlined and responsive.

With --watch the manifest and the config file in use are watched. Each change
re-reads the config file before exporting again. The set of watched files is
fixed at start, so pointing export.manifest at another file needs a restart.

Examples:
  tvdocs export                                   # Built-in usages to public/brand
  tvdocs export -m brand.yml --out static/brand   # Custom manifest (YAML or TOML)
  tvdocs export --fingerprint                     # hero.1a2b3c4d5e6f.svg
  tvdocs export --watch                           # Re-export when the manifest or config changes
  tvdocs export -o json                           # Machine-readable file list`,
	RunE: runExport,
}

var (
	exportManifest    string
	exportOutDir      string
	exportFingerprint bool
	exportNoVerify    bool
	exportWatch       bool
	exportOutputFlags *OutputFlags
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportManifest, "manifest", "m", "", "Manifest file (.yml, .yaml or .toml)")
	exportCmd.Flags().StringVar(&exportOutDir, "out", "", "Output directory (default from config: public/brand)")
	exportCmd.Flags().BoolVar(&exportFingerprint, "fingerprint", false, "Insert a content digest into file names")
	exportCmd.Flags().BoolVar(&exportNoVerify, "no-verify", false, "Skip parsing the rendered markup before writing")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "Re-export when the manifest or config file changes")
	exportOutputFlags = AddOutputFlags(exportCmd, "text", false)

	_ = viper.BindPFlag("export.manifest", exportCmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("export.output_dir", exportCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("export.fingerprint", exportCmd.Flags().Lookup("fingerprint"))
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := ValidateFormat(exportOutputFlags.Format, []string{"text", "json"}); err != nil {
		return err
	}

	cfg, logger, err := loadExportConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := exportOnce(ctx, cmd.OutOrStdout(), cfg, logger); err != nil && !exportWatch {
		return err
	} else if err != nil {
		printWarning(cmd.ErrOrStderr(), "%v", err)
	}

	if !exportWatch {
		return nil
	}

	// Every change batch re-reads the config file so edits to output_dir,
	// fingerprint, verify or logo.class apply to the next export.
	rerun := func(ctx context.Context) error {
		if used := viper.ConfigFileUsed(); used != "" {
			if err := viper.ReadInConfig(); err != nil {
				return tverrors.NewConfigError(tverrors.ErrCodeConfigInvalid, "cannot reload configuration").
					WithFile(used).
					WithContext("cause", err.Error())
			}
		}
		cfg, logger, err := loadExportConfig(cmd)
		if err != nil {
			return err
		}
		return exportOnce(ctx, cmd.OutOrStdout(), cfg, logger)
	}
	return watchAndExport(ctx, cmd.ErrOrStderr(), cfg, logger, rerun)
}

// loadExportConfig loads the configuration and applies the flags viper does
// not bind.
func loadExportConfig(cmd *cobra.Command) (*config.Config, logging.Logger, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("no-verify") {
		cfg.Export.Verify = !exportNoVerify
	}
	return cfg, logger, nil
}

// exportOnce builds an exporter from cfg and exports the configured manifest.
func exportOnce(ctx context.Context, w io.Writer, cfg *config.Config, logger logging.Logger) error {
	exp := export.New(export.Options{
		OutputDir:   cfg.Export.OutputDir,
		Fingerprint: cfg.Export.Fingerprint,
		Verify:      cfg.Export.Verify,
		Class:       cfg.Logo.Class,
		Logger:      logger,
	})

	m, err := loadManifest(cfg.Export.Manifest)
	if err != nil {
		return err
	}
	result, err := exp.Run(ctx, m)
	if result != nil {
		if printErr := printExportResult(w, result); printErr != nil {
			return printErr
		}
	}
	return err
}

func loadManifest(path string) (*manifest.Manifest, error) {
	if path == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(path)
}

func printExportResult(w io.Writer, result *export.Result) error {
	if exportOutputFlags.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, f := range result.Files {
		printSuccess(w, "%-14s %s (%d bytes)", f.Entry, f.Path, f.Bytes)
	}
	return nil
}

func watchAndExport(
	ctx context.Context,
	stderr io.Writer,
	cfg *config.Config,
	logger logging.Logger,
	rerun func(context.Context) error,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Stop()

	var files []string
	if cfg.Export.Manifest != "" {
		files = append(files, cfg.Export.Manifest)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		files = append(files, used)
	}
	if len(files) == 0 {
		printWarning(stderr, "nothing to watch: the built-in manifest is used and no config file was found")
		return nil
	}

	for _, f := range files {
		if err := fw.AddFile(f); err != nil {
			return err
		}
	}
	fw.AddFilter(watcher.FilesFilter(files...))
	fw.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		for _, e := range events {
			logger.Info(ctx, "Change detected", "path", e.Path, "type", e.Type.String())
		}
		return rerun(ctx)
	})

	if err := fw.Start(ctx); err != nil {
		return err
	}
	printInfo(stderr, "Watching %d file(s) for changes, press Ctrl+C to stop", len(files))

	<-ctx.Done()
	fw.Wait()
	return nil
}
