package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDirs(t *testing.T) {
	t.Run("no paths watches the current directory", func(t *testing.T) {
		assert.Equal(t, []string{"."}, watchDirs(nil))
	})

	t.Run("directories are watched as given", func(t *testing.T) {
		dir := t.TempDir()
		assert.Equal(t, []string{dir}, watchDirs([]string{dir}))
	})

	t.Run("files map to their parent", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "a.pdf")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		assert.Equal(t, []string{dir}, watchDirs([]string{file}))
	})

	t.Run("duplicate parents collapse", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.pdf")
		b := filepath.Join(dir, "b.pdf")
		require.NoError(t, os.WriteFile(a, []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(b, []byte("x"), 0o644))

		assert.Equal(t, []string{dir}, watchDirs([]string{a, b}))
	})
}

func TestIsPDFEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"pdf write", fsnotify.Event{Name: "a.pdf", Op: fsnotify.Write}, true},
		{"pdf create", fsnotify.Event{Name: "b.PDF", Op: fsnotify.Create}, true},
		{"pdf remove", fsnotify.Event{Name: "c.pdf", Op: fsnotify.Remove}, true},
		{"non-pdf write", fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, false},
		{"pdf chmod only", fsnotify.Event{Name: "a.pdf", Op: fsnotify.Chmod}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPDFEvent(tt.event))
		})
	}
}
