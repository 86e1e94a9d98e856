// Package manifest describes the named logo usages of the documentation site.
//
// A manifest is a list of entries, each a logo request with a unique name.
// Files are YAML or TOML, chosen by extension:
//
//	entries:
//	  - name: hero
//	    height: 120
//	  - name: navbar
//	    height: 30
//
//	[[entries]]
//	name = "hero"
//	height = 120
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	tverrors "github.com/conneroisu/tvdocs/internal/errors"
	"github.com/conneroisu/tvdocs/pkg/logo"
)

// Format is a manifest file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Manifest is an ordered list of logo usages.
type Manifest struct {
	Entries []Entry `yaml:"entries" toml:"entries" json:"entries"`
}

// Entry is one named logo usage.
type Entry struct {
	Name     string            `yaml:"name" toml:"name" json:"name"`
	Outlined bool              `yaml:"outlined,omitempty" toml:"outlined,omitempty" json:"outlined,omitempty"`
	Auto     bool              `yaml:"auto,omitempty" toml:"auto,omitempty" json:"auto,omitempty"`
	Small    bool              `yaml:"small,omitempty" toml:"small,omitempty" json:"small,omitempty"`
	Size     float64           `yaml:"size,omitempty" toml:"size,omitempty" json:"size,omitempty"`
	Width    float64           `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height   float64           `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	Class    string            `yaml:"class,omitempty" toml:"class,omitempty" json:"class,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty" toml:"attrs,omitempty" json:"attrs,omitempty"`
}

// Request converts the entry into a logo request. The attribute map is copied.
func (e Entry) Request() logo.Request {
	var attrs templ.Attributes
	if len(e.Attrs) > 0 {
		attrs = make(templ.Attributes, len(e.Attrs))
		for k, v := range e.Attrs {
			attrs[k] = v
		}
	}

	return logo.Request{
		Outlined: e.Outlined,
		Auto:     e.Auto,
		Small:    e.Small,
		Size:     e.Size,
		Width:    e.Width,
		Height:   e.Height,
		Class:    e.Class,
		Attrs:    attrs,
	}
}

// Default returns the usages of the published site: the landing page hero,
// the navbar brand, and the standalone marks.
func Default() *Manifest {
	return &Manifest{Entries: []Entry{
		{Name: "hero", Height: 120},
		{Name: "navbar", Height: 30},
		{Name: "mark", Small: true},
		{Name: "mark-outlined", Outlined: true},
		{Name: "responsive", Auto: true, Height: 30},
	}}
}

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", tverrors.NewValidationError(tverrors.ErrCodeUnsupportedFile,
			fmt.Sprintf("unsupported manifest extension %q (use .yml, .yaml or .toml)", filepath.Ext(path))).
			WithFile(path)
	}
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := tverrors.ErrCodeInternalError
		if os.IsNotExist(err) {
			code = tverrors.ErrCodeFileNotFound
		}
		return nil, tverrors.NewIOError(code, "cannot read manifest", err).WithFile(path)
	}

	m, err := Parse(data, format)
	if err != nil {
		var te *tverrors.Error
		if errors.As(err, &te) {
			te.WithFile(path)
		}
		return nil, err
	}
	return m, nil
}

// Parse decodes and validates manifest data.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, tverrors.NewValidationError(tverrors.ErrCodeManifestInvalid, "cannot decode YAML manifest").
				WithContext("cause", err.Error())
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, tverrors.NewValidationError(tverrors.ErrCodeManifestInvalid, "cannot decode TOML manifest").
				WithContext("cause", err.Error())
		}
	default:
		return nil, tverrors.NewValidationError(tverrors.ErrCodeUnsupportedFile,
			fmt.Sprintf("unsupported manifest format %q", format))
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the manifest has entries with unique, file-safe names
// and well-formed attribute keys.
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return tverrors.NewValidationError(tverrors.ErrCodeManifestInvalid, "manifest has no entries")
	}

	seen := make(map[string]struct{}, len(m.Entries))
	for i, e := range m.Entries {
		if !namePattern.MatchString(e.Name) {
			return tverrors.NewValidationError(tverrors.ErrCodeManifestInvalid,
				fmt.Sprintf("entry %d: name %q must match %s", i, e.Name, namePattern.String()))
		}
		if _, dup := seen[e.Name]; dup {
			return tverrors.NewValidationError(tverrors.ErrCodeManifestInvalid, "duplicate entry name").
				WithEntry(e.Name)
		}
		seen[e.Name] = struct{}{}

		for k := range e.Attrs {
			if !logo.ValidAttributeName(k) {
				return tverrors.NewValidationError(tverrors.ErrCodeManifestInvalid,
					fmt.Sprintf("attribute key %q is not a valid attribute name", k)).
					WithEntry(e.Name)
			}
		}
	}
	return nil
}

// Names returns the entry names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Encode writes m in the given format.
func (m *Manifest) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(m)
	case FormatTOML:
		return toml.Marshal(m)
	default:
		return nil, tverrors.NewValidationError(tverrors.ErrCodeUnsupportedFile,
			fmt.Sprintf("unsupported manifest format %q", format))
	}
}
