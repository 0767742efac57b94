package statusService

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	gitservice "github.com/redjax/gl/internal/services/gitService"
	"github.com/redjax/gl/internal/utils/pprint"
)

const nothingModifiedMsg = "No tracked files with modifications."

// StatusProvider enumerates tracked files with uncommitted modifications
type StatusProvider interface {
	TrackedModified() ([]gitservice.Modification, error)
}

// RunGitStatus prints the tracked files with modifications as a table on w.
func RunGitStatus(status StatusProvider, printer *pprint.Printer, w io.Writer) error {
	mods, err := status.TrackedModified()
	if err != nil {
		return fmt.Errorf("failed to gather git status: %w", err)
	}

	if len(mods) == 0 {
		printer.Msg(nothingModifiedMsg)
		return nil
	}

	printStatusTable(w, mods)
	printer.Exp("use gl diff to see the changes")

	return nil
}

// printStatusTable renders one row per modification, in provider order
func printStatusTable(w io.Writer, mods []gitservice.Modification) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Status"})

	for _, mod := range mods {
		t.AppendRow(table.Row{mod.Path, string(mod.Status)})
	}

	t.AppendFooter(table.Row{"Total", len(mods)})
	t.Render()
}
