// Command schematica spawns the demo hierarchy and generates Instantiate
// methods for schematic struct types.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/schematica/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "schematica:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
