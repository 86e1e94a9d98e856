// Package internal contains the implementation packages behind the tvdocs CLI.
//
// # Package Organization
//
//   - config: viper-backed configuration with defaults, env overrides and validation
//   - errors: typed errors with codes, context and a logging handler
//   - export: renders manifest entries to static assets with blake3 digests
//   - logging: slog-backed structured logger and operation timing
//   - manifest: YAML and TOML description of the site's logo usages
//   - markup: parses rendered fragments back into inspectable <svg> elements
//   - version: build information from ldflags and debug.ReadBuildInfo
//   - watcher: fsnotify watcher with debouncing for the export --watch loop
//
// The rendering itself lives in pkg/logo so other templ projects can import it.
package internal
