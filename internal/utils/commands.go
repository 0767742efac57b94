package utils

import "os/exec"

// IsCommandAvailable reports whether cmd resolves in PATH. gl diff uses it to
// warn up front when the less pager is missing.
func IsCommandAvailable(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
