package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(state *rootState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Print summary statistics for an ontology file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := state.readOntology(args[0], format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ont.Statistics().String())
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format (default: by extension)")
	return cmd
}
