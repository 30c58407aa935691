// Command gapsort sorts integers with instrumented Shell sort and
// benchmarks the gap sequences.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/gapsort/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// ExitErrors were already reported by the command's formatter.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
