package cli

import (
	"os"
	"testing"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for the local Go 1.21 toolchain:
// it changes the working directory and restores it when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
