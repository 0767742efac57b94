package diffService

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ArtifactPattern is the os.CreateTemp pattern for diff artifacts
const ArtifactPattern = "gl-diff-*"

// WithArtifact creates a uniquely named temporary file in dir ("" for the OS default),
// lets fill write it, closes it and hands its path to use. The file is removed once
// use returns, also when fill fails or use panics.
func WithArtifact(dir string, fill func(w io.Writer) error, use func(path string)) (err error) {
	f, err := os.CreateTemp(dir, ArtifactPattern)
	if err != nil {
		return fmt.Errorf("could not create diff file: %w", err)
	}
	path := f.Name()
	slog.Debug("created diff artifact", slog.String("path", path))

	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = errors.Join(err, fmt.Errorf("could not remove diff file %s: %w", path, rmErr))
		}
	}()

	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write diff file: %w", err)
	}

	// The pager opens the file on its own
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close diff file: %w", err)
	}

	use(path)

	return nil
}
