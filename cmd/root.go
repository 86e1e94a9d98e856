package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/tvdocs/internal/config"
	"github.com/conneroisu/tvdocs/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tvdocs",
	Short: "Brand-mark components and asset export for the Tailwind Variants docs",
	Long: `tvdocs renders the Tailwind Variants logo in its three forms (wordmark,
small mark, outlined small mark) plus the responsive pair that swaps between
them at the sm breakpoint, and exports the site's logo usages as static assets.

Quick Start:
  tvdocs render --height 30       Navbar wordmark
  tvdocs render --auto            Responsive pair
  tvdocs variants                 List kinds and their classes
  tvdocs export --watch           Export assets and re-export on change`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .tvdocs.yml, can also use TVDOCS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig points viper at the config file.
//
// Priority (highest to lowest): --config flag, TVDOCS_CONFIG_FILE, then
// .tvdocs.yml in the working directory or $XDG_CONFIG_HOME/tvdocs.
// A missing file is not an error; defaults apply.
func initConfig() {
	path := cfgFile
	if path == "" {
		path = os.Getenv("TVDOCS_CONFIG_FILE")
	}
	config.Setup(viper.GetViper(), path)

	if err := viper.ReadInConfig(); err == nil {
		printInfo(os.Stderr, "Using config file: %s", viper.ConfigFileUsed())
	}
}

// loadConfig loads configuration and builds the logger it describes.
func loadConfig() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(strings.TrimSpace(cfg.Log.Level))
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	return cfg, logger, nil
}
