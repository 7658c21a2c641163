package cli_test

import (
	"fmt"

	"github.com/skippyr/reveal/internal/cli"
)

// Example shows how the two queries are answered independently.
func Example() {
	args := cli.New([]string{"reveal", "--help", "/does/not/exist"})
	fmt.Println("help:", args.WantsHelp())

	_, err := args.ResolvePath()
	fmt.Println("error:", err)

	// Output:
	// help: true
	// error: The path does not exists.
}
