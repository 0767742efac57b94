package diffService

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithArtifact(t *testing.T) {
	t.Run("file is filled, closed, used and removed", func(t *testing.T) {
		dir := t.TempDir()
		var seenPath, seenContent string

		err := WithArtifact(dir,
			func(w io.Writer) error {
				_, err := io.WriteString(w, "payload")
				return err
			},
			func(path string) {
				seenPath = path
				b, err := os.ReadFile(path)
				require.NoError(t, err)
				seenContent = string(b)
			})
		require.NoError(t, err)

		assert.Equal(t, dir, filepath.Dir(seenPath))
		assert.True(t, strings.HasPrefix(filepath.Base(seenPath), "gl-diff-"))
		assert.Equal(t, "payload", seenContent)
		assert.NoFileExists(t, seenPath)
	})

	t.Run("names are unique across calls", func(t *testing.T) {
		dir := t.TempDir()
		seen := map[string]bool{}

		for i := 0; i < 5; i++ {
			require.NoError(t, WithArtifact(dir,
				func(io.Writer) error { return nil },
				func(path string) { seen[path] = true }))
		}

		assert.Len(t, seen, 5)
	})

	t.Run("fill error removes the file and skips use", func(t *testing.T) {
		dir := t.TempDir()
		used := false

		err := WithArtifact(dir,
			func(io.Writer) error { return errors.New("boom") },
			func(string) { used = true })

		assert.ErrorContains(t, err, "boom")
		assert.False(t, used)
		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})

	t.Run("panicking use still removes the file", func(t *testing.T) {
		dir := t.TempDir()

		assert.Panics(t, func() {
			_ = WithArtifact(dir,
				func(io.Writer) error { return nil },
				func(string) { panic("pager blew up") })
		})

		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})

	t.Run("missing directory fails before anything runs", func(t *testing.T) {
		err := WithArtifact(filepath.Join(t.TempDir(), "nope"),
			func(io.Writer) error { t.Fatal("fill called"); return nil },
			func(string) { t.Fatal("use called") })

		assert.Error(t, err)
	})
}
