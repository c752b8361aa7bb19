package main

import (
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the metric descriptors the module reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptors, err := a.client.ListMetrics()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), descriptors)
		},
	}
}
