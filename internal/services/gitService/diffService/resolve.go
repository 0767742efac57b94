package diffService

import (
	"fmt"
	"log/slog"

	gitservice "github.com/redjax/gl/internal/services/gitService"
)

// StatusProvider enumerates tracked files with uncommitted modifications
type StatusProvider interface {
	TrackedModified() ([]gitservice.Modification, error)
}

// ResolveFiles returns the files to diff: the explicit ones verbatim and in order,
// or the modified tracked files in provider order. An empty result means there is nothing to diff.
func ResolveFiles(status StatusProvider, files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}

	mods, err := status.TrackedModified()
	if err != nil {
		return nil, fmt.Errorf("could not list modified files: %w", err)
	}

	paths := make([]string, 0, len(mods))
	for _, mod := range mods {
		paths = append(paths, mod.Path)
	}

	slog.Debug("resolved files from status", slog.Any("files", paths))

	return paths, nil
}
