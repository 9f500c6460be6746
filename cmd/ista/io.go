package main

import (
	"path/filepath"
	"strings"

	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/serialize"
)

// formatFor resolves an explicit format flag or guesses from the file
// extension, falling back to the configured default.
func (s *rootState) formatFor(flag, path string) serialize.Format {
	if flag != "" {
		return serialize.Format(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofn", ".owl", ".func":
		return serialize.FunctionalSyntax
	case ".rdf", ".xml":
		return serialize.RDFXML
	case ".ttl":
		return serialize.Turtle
	case ".omn":
		return serialize.Manchester
	case ".owx":
		return serialize.OWLXML
	default:
		return serialize.Format(s.cfg.DefaultFormat)
	}
}

func (s *rootState) readOntology(path, formatFlag string) (*ontology.Ontology, error) {
	parser, err := serialize.NewParser(s.formatFor(formatFlag, path), serialize.WithMetrics(s.coreMetrics()))
	if err != nil {
		return nil, err
	}
	return parser.ParseFile(path)
}

func (s *rootState) writeOntology(ont *ontology.Ontology, path, formatFlag string) error {
	serializer, err := serialize.NewSerializer(s.formatFor(formatFlag, path), serialize.WithMetrics(s.coreMetrics()))
	if err != nil {
		return err
	}
	return serializer.SerializeFile(ont, path)
}
