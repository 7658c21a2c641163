// Package cli provides command-line argument handling for reveal.
//
// The process arguments are captured once into an immutable Arguments value,
// which answers two independent questions:
//   - WantsHelp: whether -h or --help was passed anywhere
//   - ResolvePath: the canonical absolute path to reveal
//
// Path selection is position based. If more than one argument follows the
// program name, only the last one is considered, whatever it looks like.
// With no arguments the current directory is used.
//
// Example usage:
//
//	args := cli.Capture()
//	if args.WantsHelp() {
//	    ui.PrintHelp()
//	    os.Exit(0)
//	}
//
//	path, err := args.ResolvePath()
//	if errors.Is(err, cli.ErrPathNotFound) {
//	    ui.Fail("%v", err)
//	    os.Exit(1)
//	}
package cli
