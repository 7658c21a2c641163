package ui

import "fmt"

// PrintHelp writes the usage instructions to Out.
func PrintHelp() {
	fmt.Fprintln(Out, Bold("Help Instructions"))
	fmt.Fprintf(Out, "\t%s\n", Bold("Starting Point"))
	fmt.Fprintln(Out, "\t\tThis is a program to reveal directory entries and file contents.")
	fmt.Fprintf(Out, "\t%s\n", Bold("Syntax"))
	fmt.Fprintln(Out, "\t\tUse this program with following syntax:")
	fmt.Fprintf(Out, "\t\t\t%s [flags] <path>\n", Green("reveal"))
	fmt.Fprintln(Out, "\t\tThe flags it can accept are:")
	fmt.Fprintln(Out, "\t\t\t-h, --help: print these help instructions.")
	fmt.Fprintln(Out, "\t\tIf no path is provided, it will consider your current directory.")
	fmt.Fprintln(Out, "\t\tIf multiple paths are provided, only the last one will be considered.")
}
