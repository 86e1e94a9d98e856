package config

import (
	"fmt"
	"path/filepath"
	"strings"

	tverrors "github.com/conneroisu/tvdocs/internal/errors"
)

// validateConfig validates configuration values for correctness
func validateConfig(config *Config) error {
	if err := validateExportConfig(&config.Export); err != nil {
		return fmt.Errorf("export config: %w", err)
	}

	if config.Watch.Debounce <= 0 {
		return tverrors.NewConfigError(tverrors.ErrCodeConfigInvalid, "watch.debounce must be positive").
			WithContext("value", config.Watch.Debounce.String())
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return tverrors.NewConfigError(tverrors.ErrCodeConfigInvalid,
			fmt.Sprintf("log.format %q is not supported (text, json)", config.Log.Format))
	}

	return nil
}

func validateExportConfig(config *ExportConfig) error {
	if err := ValidatePath(config.OutputDir); err != nil {
		return fmt.Errorf("output_dir: %w", err)
	}

	if config.Manifest != "" {
		if err := ValidatePath(config.Manifest); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	}

	return nil
}

// ValidatePath rejects empty paths, traversal, and shell metacharacters.
func ValidatePath(path string) error {
	if path == "" {
		return tverrors.NewValidationError(tverrors.ErrCodeInvalidPath, "empty path")
	}

	cleanPath := filepath.Clean(path)

	for _, part := range strings.Split(filepath.ToSlash(cleanPath), "/") {
		if part == ".." {
			return tverrors.NewValidationError(tverrors.ErrCodePathTraversal,
				fmt.Sprintf("path contains traversal: %s", path))
		}
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "<", ">", "\"", "'", "\x00"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return tverrors.NewValidationError(tverrors.ErrCodeInvalidPath,
				fmt.Sprintf("path contains dangerous character: %q", char))
		}
	}

	return nil
}
