package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLevelFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"levels/world-1.json", true},
		{"levels/WORLD-2.TMX", true},
		{"settings.yaml", false},
		{"levels/world-1.json~", false},
		{"levels", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLevelFile(tt.path))
		})
	}
}

func TestWatcher_ReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	level := filepath.Join(dir, "world-1.json")
	require.NoError(t, os.WriteFile(level, []byte("{}"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, level, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level write")
	}
}

func TestWatcher_ReportsLastWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Close()

	level := filepath.Join(dir, "world-2.json")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(level, []byte(`{"width": `), 0o644))
		time.Sleep(debounce / 4)
	}
	require.NoError(t, os.WriteFile(level, []byte(`{"width": 4}`), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, level, name)
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, `{"width": 4}`, string(data), "reported after the burst settled")
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level write")
	}
}

func TestSettler_WaitsForQuiet(t *testing.T) {
	const delay = 200 * time.Millisecond
	s := newSettler(delay)
	defer s.stop()

	for i := 0; i < 4; i++ {
		s.touch("a.json")
		time.Sleep(delay / 4)
	}

	select {
	case <-s.ready:
		t.Fatal("reported while events were still arriving")
	case <-time.After(delay / 2):
	}

	select {
	case name := <-s.ready:
		assert.Equal(t, "a.json", name)
		s.forget(name)
	case <-time.After(2 * time.Second):
		t.Fatal("never reported")
	}

	select {
	case <-s.ready:
		t.Fatal("reported twice")
	case <-time.After(2 * delay):
	}
}

func TestWatcher_Drain(t *testing.T) {
	w := &Watcher{Events: make(chan string, 4)}
	w.Events <- "a.json"
	w.Events <- "a.json"
	w.Events <- "b.tmx"

	assert.Equal(t, []string{"a.json", "b.tmx"}, w.Drain())
	assert.Empty(t, w.Drain())
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok, "events channel is closed")
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
