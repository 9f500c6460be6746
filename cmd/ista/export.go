package main

import (
	"fmt"

	neo4jdriver "github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/spf13/cobra"

	"github.com/RomanoLab/ista/export/neo4j"
)

func newExportCmd(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an ontology to an external system",
	}
	cmd.AddCommand(newExportNeo4jCmd(state))
	return cmd
}

func newExportNeo4jCmd(state *rootState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "neo4j <file>",
		Short: "Bulk-load an ontology's individuals and assertions into Neo4j",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := state.readOntology(args[0], format)
			if err != nil {
				return err
			}

			nc := state.cfg.Neo4j
			driver, err := neo4jdriver.NewDriverWithContext(
				nc.URI, neo4jdriver.BasicAuth(nc.Username, nc.Password, ""))
			if err != nil {
				return err
			}
			defer driver.Close(cmd.Context())

			loader := neo4j.NewLoader(driver,
				neo4j.WithDatabase(nc.Database),
				neo4j.WithBatchSize(nc.BatchSize),
				neo4j.WithLogger(state.logger),
			)
			stats, err := loader.LoadOntology(cmd.Context(), ont)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"nodes: %d, relationships: %d, properties: %d, batches: %d\n",
				stats.Nodes, stats.Relationships, stats.Properties, stats.Batches)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format (default: by extension)")
	return cmd
}
