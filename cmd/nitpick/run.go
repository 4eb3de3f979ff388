package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"nitpick/internal/options"
	"nitpick/internal/plugins"
)

// runChecks hands the resolved configuration to the check pipeline. The
// pipeline itself is still being ported; for now the command reports what a
// run would cover so the resolution path is exercisable end to end.
func runChecks(cmd *cobra.Command, ns *options.Namespace, loaded *plugins.Plugins) error {
	slog.Debug("configuration resolved",
		"filenames", fmt.Sprint(ns.Filenames),
		"default_enable", fmt.Sprint(ns.ExtendedDefaultEnable),
		"default_disable", fmt.Sprint(ns.ExtendedDefaultDisable),
		"plugins", len(loaded.All()))

	if len(ns.Filenames) == 0 {
		return fmt.Errorf("no files to check; pass one or more paths")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "nitpick: %d file(s), %d plugin(s), %d check group(s) enabled by default\n",
		len(ns.Filenames), len(loaded.All()), len(ns.ExtendedDefaultEnable))
	return nil
}
