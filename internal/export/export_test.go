package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tverrors "github.com/conneroisu/tvdocs/internal/errors"
	"github.com/conneroisu/tvdocs/internal/logging"
	"github.com/conneroisu/tvdocs/internal/manifest"
	"github.com/conneroisu/tvdocs/internal/markup"
	"github.com/conneroisu/tvdocs/pkg/logo"
)

func TestRunDefaultManifest(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelDebug, Output: &logs})

	exp := New(Options{OutputDir: dir, Verify: true, Logger: logger})
	result, err := exp.Run(context.Background(), manifest.Default())
	require.NoError(t, err)
	require.Len(t, result.Files, 5)

	byEntry := make(map[string]File)
	for _, f := range result.Files {
		byEntry[f.Entry] = f
		assert.FileExists(t, f.Path)
		assert.Len(t, f.Digest, 64)
	}

	assert.Equal(t, filepath.Join(dir, "hero.svg"), byEntry["hero"].Path)
	assert.Equal(t, filepath.Join(dir, "responsive.html"), byEntry["responsive"].Path)
	assert.Equal(t, logo.KindAuto, byEntry["responsive"].Kind)

	data, err := os.ReadFile(byEntry["navbar"].Path)
	require.NoError(t, err)
	elements, err := markup.Inspect(string(data))
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "30", elements[0].Attr("height"))
	assert.Equal(t, byEntry["navbar"].Bytes, len(data))

	assert.Contains(t, logs.String(), "Operation completed")
	assert.Contains(t, logs.String(), "component=export")

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tvdocs-"), e.Name())
	}
}

func TestRunFingerprint(t *testing.T) {
	dir := t.TempDir()
	m := &manifest.Manifest{Entries: []manifest.Entry{{Name: "mark", Small: true}}}

	result, err := New(Options{OutputDir: dir, Fingerprint: true}).Run(context.Background(), m)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	f := result.Files[0]
	data, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Equal(t, Digest(data), f.Digest)
	assert.Equal(t, "mark."+f.Digest[:DigestLength]+".svg", filepath.Base(f.Path))

	// Same input, same name.
	again, err := New(Options{OutputDir: dir, Fingerprint: true}).Run(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, f.Path, again.Files[0].Path)
}

func TestRenderAppliesDefaultClass(t *testing.T) {
	exp := New(Options{Class: "h-8", Verify: true})

	out, err := exp.Render(context.Background(), manifest.Entry{Name: "x", Small: true, Class: "mx-auto"})
	require.NoError(t, err)

	elements, err := markup.Inspect(string(out))
	require.NoError(t, err)
	require.Len(t, elements, 1)
	classes := elements[0].Classes
	assert.Equal(t, []string{"mx-auto", "h-8"}, classes[len(classes)-2:])
}

func TestVerifyAllowsCallerViewBox(t *testing.T) {
	exp := New(Options{Verify: true})
	_, err := exp.Render(context.Background(), manifest.Entry{
		Name:  "cropped",
		Attrs: map[string]string{"viewBox": "0 0 70 96"},
	})
	assert.NoError(t, err)
}

func TestVerifyDetectsMismatch(t *testing.T) {
	err := verify(`<svg viewBox="0 0 1 1"></svg>`, logo.Request{Small: true})
	require.NotNil(t, err)
	assert.Equal(t, tverrors.ErrCodeVerifyFailed, err.Code)

	err = verify(`<svg viewBox="0 0 126 126"></svg>`, logo.Request{Auto: true})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "expected 2 svg elements, found 1")

	assert.Nil(t, verify(`<svg viewBox="0 0 126 126"></svg>`, logo.Request{Small: true}))
}

func TestRunInvalidManifest(t *testing.T) {
	_, err := New(Options{OutputDir: t.TempDir()}).Run(context.Background(), &manifest.Manifest{})
	require.Error(t, err)
	assert.True(t, tverrors.IsValidation(err))
}

func TestRunWriteFailureContinues(t *testing.T) {
	dir := t.TempDir()
	// A directory where the asset should go makes the rename fail for that entry only.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "hero.svg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.svg", "keep"), []byte("x"), 0o600))

	m := &manifest.Manifest{Entries: []manifest.Entry{
		{Name: "hero", Height: 120},
		{Name: "mark", Small: true},
	}}

	result, err := New(Options{OutputDir: dir}).Run(context.Background(), m)
	require.Error(t, err)
	assert.ErrorIs(t, err, &tverrors.Error{Type: tverrors.ErrorTypeIO, Code: tverrors.ErrCodeWriteFailed})
	require.Len(t, result.Files, 1)
	assert.Equal(t, "mark", result.Files[0].Entry)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(Options{OutputDir: t.TempDir()}).Run(ctx, manifest.Default())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Files)
}

func TestFileName(t *testing.T) {
	digest := strings.Repeat("ab", 32)
	assert.Equal(t, "hero.svg", FileName("hero", logo.KindLarge, digest, false))
	assert.Equal(t, "hero.abababababab.svg", FileName("hero", logo.KindLarge, digest, true))
	assert.Equal(t, "pair.html", FileName("pair", logo.KindAuto, digest, false))
	assert.Equal(t, "short.svg", FileName("short", logo.KindSmall, "abc", true))
}
