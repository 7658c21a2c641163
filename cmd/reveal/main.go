package main

import (
	"fmt"
	"io"
	"os"

	"github.com/skippyr/reveal/internal/cli"
	"github.com/skippyr/reveal/internal/ui"
)

// stdout receives the resolved path.
var stdout io.Writer = os.Stdout

func main() {
	os.Exit(run(cli.Capture()))
}

func run(args cli.Arguments) int {
	if args.WantsHelp() {
		ui.PrintHelp()
		return 0
	}

	path, err := args.ResolvePath()
	if err != nil {
		ui.Fail("%v", err)
		return 1
	}

	reveal(path)
	return 0
}

// reveal hands the resolved path to the content stage.
func reveal(path string) {
	fmt.Fprintln(stdout, path)
}
