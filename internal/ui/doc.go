// Package ui provides terminal output for reveal.
//
// Everything is written to ui.Out, which defaults to os.Stderr and can be
// swapped for testing. Styling comes from fatih/color and is dropped
// automatically when the output is not a terminal or NO_COLOR is set.
//
// Example usage:
//
//	ui.PrintHelp()
//	ui.Fail("The path does not exists.")
package ui
