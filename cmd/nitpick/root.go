package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nitpick/internal/buildinfo"
	"nitpick/internal/options"
	"nitpick/internal/plugins"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nitpick [options] file file ...",
		Short:         "Pluggable file nitpicker",
		SilenceUsage:  true,
		SilenceErrors: true,
		// The flag surface is owned by the dynamic option registry, so
		// cobra must hand the raw argument vector through untouched.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newBugReportCommand())

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	ns, loaded, err := options.ParseArgs(args, plugins.Default())
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if ns.Bool("version") {
		fmt.Fprintln(cmd.OutOrStdout(), "nitpick", buildinfo.Banner(loaded.Versions()))
		return nil
	}

	// Check execution lives elsewhere; this command's job ends with a
	// fully resolved configuration.
	return runChecks(cmd, ns, loaded)
}
