package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nitpick/internal/buildinfo"
	"nitpick/internal/plugins"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := plugins.Default().Find(plugins.Options{})
			if err != nil {
				return err
			}
			loaded := plugins.Load(entries)
			fmt.Fprintln(cmd.OutOrStdout(), "nitpick", buildinfo.Banner(loaded.Versions()))
			return nil
		},
	}
}
