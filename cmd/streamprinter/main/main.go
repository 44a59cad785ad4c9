package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/streamprinter/cmd/streamprinter"
	"github.com/arthur-debert/streamprinter/pkg/formatter"
	"github.com/arthur-debert/streamprinter/pkg/logging"
	"github.com/arthur-debert/streamprinter/pkg/printer"
)

func main() {
	rootCmd := streamprinter.NewRootCmd()
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		stderr := printer.New(printer.WithStdout(os.Stderr))
		if werr := stderr.Writeln("<error>Error: " + formatter.Escape(err.Error()) + "</error>"); werr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
