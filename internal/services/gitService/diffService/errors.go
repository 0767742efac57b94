package diffService

import "errors"

// ErrErrorsFound is returned when at least one file could not be diffed.
// The per-file reasons have already been printed by then.
var ErrErrorsFound = errors.New("errors found while diffing")

// ErrUnrecognizedResult means the diff provider returned a result the presenter does not know.
var ErrUnrecognizedResult = errors.New("unrecognized diff result")
