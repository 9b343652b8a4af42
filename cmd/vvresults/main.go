// Package main is the entry point for the vvresults CLI.
package main

import (
	"os"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
