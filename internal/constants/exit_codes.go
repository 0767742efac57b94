package constants

// Process exit codes shared by all gl commands.
const (
	SUCCESS        = 0
	ERRORS_FOUND   = 1
	NOT_IN_GL_REPO = 2
	INTERNAL_ERROR = 3
)
