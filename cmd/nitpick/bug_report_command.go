package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nitpick/internal/buildinfo"
	"nitpick/internal/debug"
	"nitpick/internal/plugins"
)

func newBugReportCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "bug-report",
		Short: "Print the information to attach to a bug report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := plugins.Default().Find(plugins.Options{})
			if err != nil {
				return err
			}
			info := debug.Collect(buildinfo.Version, plugins.Load(entries))

			if jsonOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderBugReport(info))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON")
	return cmd
}

func renderBugReport(info debug.Information) string {
	rows := make([][]string, 0, len(info.Plugins)+4)
	rows = append(rows,
		[]string{"version", info.Version},
		[]string{"go", info.Platform.GoVersion},
		[]string{"system", info.Platform.System + "/" + info.Platform.Arch},
	)
	for _, plugin := range info.Plugins {
		rows = append(rows, []string{"plugin " + plugin.Plugin, plugin.Version})
	}
	return renderTable([]string{"Field", "Value"}, rows)
}
