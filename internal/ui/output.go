// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	// Color/style functions
	Bold  = color.New(color.Bold).SprintFunc()
	Green = color.New(color.FgGreen).SprintFunc()
	Red   = color.New(color.FgRed).SprintFunc()

	// Output destination for help and diagnostics
	Out io.Writer = os.Stderr
)

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "%s %s\n", Red("✘"), msg)
}
