package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/filter"
	"github.com/RomanoLab/ista/owl"
)

func newFilterCmd(state *rootState) *cobra.Command {
	var (
		fromFormat, toFormat string
		classes              []string
		individuals          []string
		neighborhoodSeed     string
		depth                int
		pathFrom, pathTo     string
		sampleSize           int
		sampleSeed           int64
	)

	cmd := &cobra.Command{
		Use:   "filter <input> <output>",
		Short: "Extract a sub-ontology",
		Long: "Extract a consistent sub-ontology using one strategy: --class/--individual " +
			"selection (optionally expanded with --depth), --neighborhood with --depth, " +
			"--path-from/--path-to, or --sample with --seed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := state.readOntology(args[0], fromFormat)
			if err != nil {
				return err
			}

			f := filter.New(ont, filter.WithMetrics(state.coreMetrics()))
			var result *filter.Result
			switch {
			case neighborhoodSeed != "":
				seed, err := owl.ParseIRI(neighborhoodSeed)
				if err != nil {
					return err
				}
				result = f.Neighborhood(seed, depth)
			case pathFrom != "" || pathTo != "":
				if pathFrom == "" || pathTo == "" {
					return errors.Wrap(errors.ErrInvalidConfig, "filter", "flags",
						"--path-from and --path-to must be given together")
				}
				a, err := owl.ParseIRI(pathFrom)
				if err != nil {
					return err
				}
				b, err := owl.ParseIRI(pathTo)
				if err != nil {
					return err
				}
				result = f.Path(a, b)
			case sampleSize > 0:
				result = f.RandomSample(sampleSize, sampleSeed)
			case len(classes) > 0 || len(individuals) > 0:
				for _, c := range classes {
					iri, err := owl.ParseIRI(c)
					if err != nil {
						return err
					}
					f.WithClasses(iri)
				}
				for _, i := range individuals {
					iri, err := owl.ParseIRI(i)
					if err != nil {
						return err
					}
					f.WithIndividuals(iri)
				}
				if cmd.Flags().Changed("depth") {
					f.WithMaxDepth(depth)
				}
				result = f.Execute()
			default:
				return errors.Wrap(errors.ErrInvalidConfig, "filter", "flags",
					"no strategy selected")
			}

			if err := state.writeOntology(result.Ontology, args[1], toFormat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"individuals: %d of %d, axioms: %d of %d\n",
				result.FilteredIndividualCount, result.OriginalIndividualCount,
				result.FilteredAxiomCount, result.OriginalAxiomCount)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fromFormat, "from", "", "input format (default: by extension)")
	flags.StringVar(&toFormat, "to", "", "output format (default: by extension)")
	flags.StringArrayVar(&classes, "class", nil, "include direct members of this class IRI (repeatable)")
	flags.StringArrayVar(&individuals, "individual", nil, "include this individual IRI (repeatable)")
	flags.StringVar(&neighborhoodSeed, "neighborhood", "", "seed individual IRI for k-hop extraction")
	flags.IntVar(&depth, "depth", 0, "BFS expansion depth")
	flags.StringVar(&pathFrom, "path-from", "", "shortest-path start individual IRI")
	flags.StringVar(&pathTo, "path-to", "", "shortest-path end individual IRI")
	flags.IntVar(&sampleSize, "sample", 0, "random sample size")
	flags.Int64Var(&sampleSeed, "seed", 1, "random sample seed")
	return cmd
}
