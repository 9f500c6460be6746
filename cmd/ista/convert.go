package main

import (
	"github.com/spf13/cobra"
)

func newConvertCmd(state *rootState) *cobra.Command {
	var fromFormat, toFormat string

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert an ontology between syntaxes",
		Long: "Convert an ontology between syntaxes. Functional syntax parses and " +
			"serializes; RDF/XML and Turtle serialize only.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := state.readOntology(args[0], fromFormat)
			if err != nil {
				return err
			}
			if err := state.writeOntology(ont, args[1], toFormat); err != nil {
				return err
			}
			state.logger.Info("converted ontology",
				"input", args[0],
				"output", args[1],
				"axioms", ont.AxiomCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&fromFormat, "from", "", "input format (default: by extension)")
	cmd.Flags().StringVar(&toFormat, "to", "", "output format (default: by extension)")
	return cmd
}
