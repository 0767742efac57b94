package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner shows message with a spinner on stderr until the returned stop function is called.
// Nothing is drawn when stderr is not a terminal.
//
//	stop := spinner.StartSpinner("Scanning working tree")
//	mods, err := repo.TrackedModified()
//	stop()
func StartSpinner(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}
