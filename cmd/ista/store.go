package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RomanoLab/ista/store"
)

func (s *rootState) openStore() (*store.Store, error) {
	return store.Open(s.cfg.Store.Path, store.WithLogger(s.logger))
}

func newSaveCmd(state *rootState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "save <file> <name>",
		Short: "Save an ontology file as a named snapshot in the local store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := state.readOntology(args[0], format)
			if err != nil {
				return err
			}
			st, err := state.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return st.Save(cmd.Context(), args[1], ont)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format (default: by extension)")
	return cmd
}

func newLoadCmd(state *rootState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "load <name> <file>",
		Short: "Write a stored snapshot out to an ontology file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := state.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ont, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return state.writeOntology(ont, args[1], format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format (default: by extension)")
	return cmd
}

func newListCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := state.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newDeleteCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := state.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return st.Delete(cmd.Context(), args[0])
		},
	}
}
