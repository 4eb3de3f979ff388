package main

import (
	"fmt"
	"os"

	"nitpick/internal/checks"
	"nitpick/internal/plugins"
)

func main() {
	checks.RegisterBuiltins(plugins.Default())

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
