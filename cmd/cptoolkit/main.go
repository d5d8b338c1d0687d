// Command cptoolkit runs the toolkit packages from the command line.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mutekichi/cptoolkit/internal/cli"
)

func main() {
	if err := fang.Execute(context.Background(), cli.NewRootCmd(nil)); err != nil {
		os.Exit(1)
	}
}
