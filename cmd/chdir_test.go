package cmd

import (
	"os"
	"testing"
)

// chdir changes the working directory to dir for the duration of the test,
// restoring the original directory on cleanup (equivalent of testing.T.Chdir,
// which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("chdir: restore: %v", err)
		}
	})
}
