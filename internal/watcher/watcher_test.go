package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestAddFile(t *testing.T) {
	w, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Stop()

	dir := t.TempDir()
	require.NoError(t, w.AddFile(filepath.Join(dir, "brand.yml")))
	require.NoError(t, w.AddFile(filepath.Join(dir, ".tvdocs.yml")))
	assert.Len(t, w.Dirs(), 1)

	assert.Error(t, w.AddFile(filepath.Join(dir, "missing", "brand.yml")))
}

func TestFilesFilter(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "brand.yml")

	files := FilesFilter(manifest)
	assert.True(t, files(manifest))
	assert.True(t, files(filepath.Join(dir, ".", "brand.yml")))
	assert.False(t, files(filepath.Join(dir, "other.yml")))
}

func TestDebouncerCollapsesBurst(t *testing.T) {
	d := &Debouncer{
		delay:  20 * time.Millisecond,
		events: make(chan ChangeEvent, 10),
		output: make(chan []ChangeEvent, 10),
	}

	d.addEvent(ChangeEvent{Type: EventTypeCreated, Path: "b.yml"})
	d.addEvent(ChangeEvent{Type: EventTypeModified, Path: "a.yml"})
	d.addEvent(ChangeEvent{Type: EventTypeModified, Path: "b.yml"})

	select {
	case batch := <-d.output:
		require.Len(t, batch, 2)
		assert.Equal(t, "a.yml", batch[0].Path)
		assert.Equal(t, "b.yml", batch[1].Path)
		assert.Equal(t, EventTypeModified, batch[1].Type)
	case <-time.After(time.Second):
		t.Fatal("debounced batch not delivered")
	}
}

func TestWatcherDeliversChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "brand.yml")
	require.NoError(t, os.WriteFile(target, []byte("entries: []\n"), 0o600))

	w, err := NewFileWatcher(30*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.AddFile(target))
	w.AddFilter(FilesFilter(target))

	var (
		mu      sync.Mutex
		batches [][]ChangeEvent
	)
	done := make(chan struct{}, 1)
	w.AddHandler(func(ctx context.Context, events []ChangeEvent) error {
		mu.Lock()
		batches = append(batches, events)
		mu.Unlock()
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	// Unrelated file in the same directory is filtered out.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(target, []byte("entries:\n  - name: hero\n"), 0o600))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("no change batch delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	for _, batch := range batches {
		for _, e := range batch {
			assert.Equal(t, "brand.yml", filepath.Base(e.Path))
		}
	}
}

func TestWaitReturnsAfterCancel(t *testing.T) {
	w, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	waited := make(chan struct{})
	go func() {
		w.Wait()
		close(waited)
	}()

	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}
