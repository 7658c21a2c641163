// Package cli handles command-line argument capture and interpretation.
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
)

// ErrPathNotFound is returned when the target path cannot be resolved to an
// existing location. All filesystem failures collapse into it.
// The text is the user-facing diagnostic and is printed as is.
var ErrPathNotFound = errors.New("The path does not exists.")

// defaultPath is used when no argument follows the program name.
const defaultPath = "."

// Arguments is the immutable invocation argument sequence, program name
// included at index 0.
type Arguments struct {
	values []string
}

// Capture reads the process arguments once.
func Capture() Arguments {
	return New(os.Args)
}

// New builds Arguments from an explicit argument vector.
func New(osArgs []string) Arguments {
	return Arguments{values: slices.Clone(osArgs)}
}

// Values returns a copy of the captured sequence.
func (a Arguments) Values() []string {
	return slices.Clone(a.values)
}

// WantsHelp reports whether -h or --help appears anywhere in the sequence.
// Only exact tokens match; clustered short flags like -xh do not.
func (a Arguments) WantsHelp() bool {
	return slices.Contains(a.values, "-h") || slices.Contains(a.values, "--help")
}

// ResolvePath returns the canonical absolute path to operate on.
//
// The candidate is the last argument when there is at least one beyond the
// program name, even if that argument looks like a flag. Otherwise it is the
// current directory. The candidate must exist; symlinks and relative segments
// are resolved.
func (a Arguments) ResolvePath() (string, error) {
	candidate := defaultPath
	if len(a.values) > 1 {
		candidate = a.values[len(a.values)-1]
	}

	// The kernel rejects "" and components that are not directories.
	if _, err := os.Stat(candidate); err != nil {
		return "", ErrPathNotFound
	}

	// Join by hand; filepath.Join would clean ".." before links are followed.
	if !filepath.IsAbs(candidate) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", ErrPathNotFound
		}
		candidate = cwd + string(filepath.Separator) + candidate
	}

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", ErrPathNotFound
	}

	return resolved, nil
}
