// Package cmd provides the command-line interface for tvdocs.
//
// # Available Commands
//
//   - render: Render one logo request to stdout or a file
//   - export: Render every usage in a manifest to static assets
//   - variants: List the logo kinds with their sizing and responsive classes
//   - version: Show build information
//
// # Command Examples
//
//	// Navbar brand, 30px tall
//	tvdocs render --height 30
//
//	// Small mark with extra attributes
//	tvdocs render --small --size 50 --attr role=img --attr aria-label="Tailwind Variants"
//
//	// Export the site's assets with content-hashed names, re-exporting on change
//	tvdocs export --manifest brand.yml --out public/brand --fingerprint --watch
//
// # Configuration
//
// Commands read .tvdocs.yml from the working directory or
// $XDG_CONFIG_HOME/tvdocs, TVDOCS_ prefixed environment variables, and
// flags, with flags taking precedence.
package cmd
