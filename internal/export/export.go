// Package export writes the site's logo usages to static asset files.
//
// Each manifest entry becomes <name>.svg, or <name>.html when the entry
// resolves to the responsive pair (two <svg> siblings inside a <div> are not
// a valid standalone SVG document). With fingerprinting enabled the file name
// carries a blake3 digest prefix so the assets can be cached indefinitely.
package export

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	tverrors "github.com/conneroisu/tvdocs/internal/errors"
	"github.com/conneroisu/tvdocs/internal/logging"
	"github.com/conneroisu/tvdocs/internal/manifest"
	"github.com/conneroisu/tvdocs/internal/markup"
	"github.com/conneroisu/tvdocs/pkg/logo"
)

// DigestLength is the number of hex characters of the digest used in
// fingerprinted file names.
const DigestLength = 12

// Options configures an Exporter.
type Options struct {
	OutputDir   string
	Fingerprint bool
	Verify      bool
	// Class is appended to every entry's own class.
	Class  string
	Logger logging.Logger
}

// File describes one written asset.
type File struct {
	Entry  string    `json:"entry" yaml:"entry"`
	Kind   logo.Kind `json:"-" yaml:"-"`
	Path   string    `json:"path" yaml:"path"`
	Bytes  int       `json:"bytes" yaml:"bytes"`
	Digest string    `json:"digest" yaml:"digest"`
}

// Result lists the files written by a run.
type Result struct {
	Files []File `json:"files" yaml:"files"`
}

// Exporter renders manifest entries to disk.
type Exporter struct {
	opts    Options
	logger  logging.Logger
	handler *tverrors.Handler
}

// New creates an Exporter.
func New(opts Options) *Exporter {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.WithComponent("export")

	return &Exporter{
		opts:    opts,
		logger:  logger,
		handler: tverrors.NewHandler(logger),
	}
}

// Run renders every entry of m. A failing entry does not stop the others;
// all entry errors are returned joined. Cancellation is checked between
// entries.
func (e *Exporter) Run(ctx context.Context, m *manifest.Manifest) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return nil, tverrors.NewIOError(tverrors.ErrCodeWriteFailed, "cannot create output directory", err).
			WithFile(e.opts.OutputDir)
	}

	op := logging.StartOperation(e.logger, "export")
	result := &Result{Files: make([]File, 0, len(m.Entries))}
	collector := tverrors.NewCollector()

	for _, entry := range m.Entries {
		if err := ctx.Err(); err != nil {
			op.EndWithError(ctx, err)
			return result, err
		}

		file, err := e.exportEntry(ctx, entry)
		if err != nil {
			e.handler.Handle(ctx, err)
			collector.Add(err)
			continue
		}

		e.logger.Debug(ctx, "Asset written",
			"entry", file.Entry, "kind", file.Kind.String(), "path", file.Path, "bytes", file.Bytes)
		result.Files = append(result.Files, file)
	}

	if err := collector.Err(); err != nil {
		op.EndWithError(ctx, err)
		return result, err
	}

	op.End(ctx, "files", len(result.Files), "output_dir", e.opts.OutputDir)
	return result, nil
}

// Render returns the markup for one entry without writing it.
func (e *Exporter) Render(ctx context.Context, entry manifest.Entry) ([]byte, error) {
	req := entry.Request()
	if e.opts.Class != "" {
		req.Class = req.Class + " " + e.opts.Class
	}

	var buf bytes.Buffer
	if err := logo.Logo(req).Render(ctx, &buf); err != nil {
		return nil, tverrors.NewRenderError(tverrors.ErrCodeRenderFailed, "cannot render logo", err).
			WithEntry(entry.Name)
	}

	if e.opts.Verify {
		if err := verify(buf.String(), req); err != nil {
			return nil, err.WithEntry(entry.Name)
		}
	}

	return buf.Bytes(), nil
}

func (e *Exporter) exportEntry(ctx context.Context, entry manifest.Entry) (File, error) {
	data, err := e.Render(ctx, entry)
	if err != nil {
		return File{}, err
	}

	digest := Digest(data)
	kind := logo.Resolve(entry.Request())
	path := filepath.Join(e.opts.OutputDir, FileName(entry.Name, kind, digest, e.opts.Fingerprint))

	if err := writeFile(path, data); err != nil {
		return File{}, tverrors.NewIOError(tverrors.ErrCodeWriteFailed, "cannot write asset", err).
			WithEntry(entry.Name).
			WithFile(path)
	}

	return File{
		Entry:  entry.Name,
		Kind:   kind,
		Path:   path,
		Bytes:  len(data),
		Digest: digest,
	}, nil
}

// Digest returns the hex blake3 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FileName returns the asset file name for an entry.
func FileName(name string, kind logo.Kind, digest string, fingerprint bool) string {
	ext := ".svg"
	if kind == logo.KindAuto {
		ext = ".html"
	}
	if fingerprint && len(digest) >= DigestLength {
		return fmt.Sprintf("%s.%s%s", name, digest[:DigestLength], ext)
	}
	return name + ext
}

func verify(out string, req logo.Request) *tverrors.Error {
	elements, err := markup.Inspect(out)
	if err != nil {
		return tverrors.NewRenderError(tverrors.ErrCodeVerifyFailed, "rendered markup does not parse", err)
	}

	variants := logo.Variants(req)
	if len(elements) != len(variants) {
		return tverrors.NewRenderError(tverrors.ErrCodeVerifyFailed,
			fmt.Sprintf("expected %d svg elements, found %d", len(variants), len(elements)), nil)
	}

	if _, overridden := req.Attrs["viewBox"]; overridden {
		return nil
	}
	for i, v := range variants {
		if got := elements[i].Attr("viewBox"); got != v.ViewBox {
			return tverrors.NewRenderError(tverrors.ErrCodeVerifyFailed,
				fmt.Sprintf("element %d: viewBox %q, expected %q", i, got, v.ViewBox), nil).
				WithContext("kind", v.Kind.String())
		}
	}
	return nil
}

// writeFile writes through a temporary file so readers never see a partial asset.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tvdocs-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
