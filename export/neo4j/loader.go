// Package neo4j bulk-loads an ontology's assertional content into Neo4j:
// one node per individual labeled by its asserted classes, one
// relationship per object-property assertion, and node properties from
// data-property assertions.
package neo4j

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"golang.org/x/sync/errgroup"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/owl"
)

// Loader writes ontologies into a Neo4j database in batched, concurrent
// transactions.
type Loader struct {
	driver    neo4j.DriverWithContext
	database  string
	batchSize int
	workers   int
	logger    *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithDatabase selects a database; empty uses the server default.
func WithDatabase(name string) Option {
	return func(l *Loader) { l.database = name }
}

// WithBatchSize sets the number of rows per write transaction.
func WithBatchSize(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.batchSize = n
		}
	}
}

// WithWorkers bounds the number of concurrent write transactions.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithLogger attaches a logger; without one the loader is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader over an open driver. The caller owns the
// driver's lifecycle.
func NewLoader(driver neo4j.DriverWithContext, opts ...Option) *Loader {
	l := &Loader{driver: driver, batchSize: 500, workers: 4}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadStats summarizes one load.
type LoadStats struct {
	Nodes         int
	Relationships int
	Properties    int
	Batches       int
}

type nodeRow struct {
	label string
	props map[string]any
}

type relRow struct {
	relType  string
	from, to string
}

// LoadOntology writes the ontology's individuals and assertions. Nodes are
// written first so every relationship batch finds both endpoints; batches
// within each phase run concurrently, bounded by the worker limit.
func (l *Loader) LoadOntology(ctx context.Context, ont *ontology.Ontology) (LoadStats, error) {
	if ont == nil {
		return LoadStats{}, errors.Wrap(errors.ErrOntologyNotFound, "Loader", "LoadOntology", "nil ontology")
	}

	nodes, props := l.collectNodes(ont)
	rels := l.collectRelationships(ont)
	stats := LoadStats{Nodes: len(nodes), Relationships: len(rels), Properties: props}

	nodeBatches := groupNodes(nodes, l.batchSize)
	stats.Batches += len(nodeBatches)
	if err := l.runBatches(ctx, len(nodeBatches), func(ctx context.Context, i int) error {
		return l.writeNodeBatch(ctx, nodeBatches[i])
	}); err != nil {
		return stats, err
	}

	relBatches := groupRelationships(rels, l.batchSize)
	stats.Batches += len(relBatches)
	if err := l.runBatches(ctx, len(relBatches), func(ctx context.Context, i int) error {
		return l.writeRelBatch(ctx, relBatches[i])
	}); err != nil {
		return stats, err
	}

	if l.logger != nil {
		l.logger.Info("loaded ontology into neo4j",
			"nodes", stats.Nodes,
			"relationships", stats.Relationships,
			"properties", stats.Properties,
			"batches", stats.Batches)
	}
	return stats, nil
}

// collectNodes builds one row per individual: label from the first named
// class assertion, properties from data-property assertions. Returns the
// rows and the total property count.
func (l *Loader) collectNodes(ont *ontology.Ontology) ([]nodeRow, int) {
	props := 0
	individuals := ont.Individuals()
	rows := make([]nodeRow, 0, len(individuals))
	for _, individual := range individuals {
		row := nodeRow{label: "Resource", props: map[string]any{"iri": individual.Key()}}
		labeled := false
		for _, ax := range ont.AssertionsAbout(individual) {
			switch a := ax.(type) {
			case owl.ClassAssertion:
				nc, ok := a.Class.(owl.NamedClass)
				if !ok || labeled {
					continue
				}
				row.label = SanitizeName(nc.Class.IRI.Local())
				labeled = true
			case owl.DataPropertyAssertion:
				row.props[SanitizeName(a.Property.IRI.Local())] = PropertyValue(a.Value)
				props++
			}
		}
		rows = append(rows, row)
	}
	return rows, props
}

func (l *Loader) collectRelationships(ont *ontology.Ontology) []relRow {
	var rows []relRow
	for _, ax := range ont.Axioms() {
		opa, ok := ax.(owl.ObjectPropertyAssertion)
		if !ok {
			continue
		}
		rows = append(rows, relRow{
			relType: SanitizeName(opa.Property.IRI.Local()),
			from:    opa.Subject.Key(),
			to:      opa.Object.Key(),
		})
	}
	return rows
}

type nodeBatch struct {
	label string
	rows  []map[string]any
}

type relBatch struct {
	relType string
	rows    []map[string]any
}

// groupNodes groups rows by label, then chunks each group.
func groupNodes(rows []nodeRow, batchSize int) []nodeBatch {
	byLabel := make(map[string][]map[string]any)
	var order []string
	for _, r := range rows {
		if _, seen := byLabel[r.label]; !seen {
			order = append(order, r.label)
		}
		byLabel[r.label] = append(byLabel[r.label], r.props)
	}

	var batches []nodeBatch
	for _, label := range order {
		for _, chunk := range Chunk(byLabel[label], batchSize) {
			batches = append(batches, nodeBatch{label: label, rows: chunk})
		}
	}
	return batches
}

func groupRelationships(rows []relRow, batchSize int) []relBatch {
	byType := make(map[string][]map[string]any)
	var order []string
	for _, r := range rows {
		if _, seen := byType[r.relType]; !seen {
			order = append(order, r.relType)
		}
		byType[r.relType] = append(byType[r.relType], map[string]any{"from": r.from, "to": r.to})
	}

	var batches []relBatch
	for _, relType := range order {
		for _, chunk := range Chunk(byType[relType], batchSize) {
			batches = append(batches, relBatch{relType: relType, rows: chunk})
		}
	}
	return batches
}

func (l *Loader) runBatches(ctx context.Context, n int, run func(context.Context, int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return run(gctx, i) })
	}
	return g.Wait()
}

func (l *Loader) writeNodeBatch(ctx context.Context, batch nodeBatch) error {
	// Labels cannot be parameterized; the sanitized name is interpolated.
	query := fmt.Sprintf(
		"UNWIND $rows AS row MERGE (n:`%s` {iri: row.iri}) SET n += row", batch.label)
	return l.write(ctx, query, map[string]any{"rows": batch.rows})
}

func (l *Loader) writeRelBatch(ctx context.Context, batch relBatch) error {
	query := fmt.Sprintf(
		"UNWIND $rows AS row MATCH (a {iri: row.from}) MATCH (b {iri: row.to}) MERGE (a)-[:`%s`]->(b)",
		batch.relType)
	return l.write(ctx, query, map[string]any{"rows": batch.rows})
}

func (l *Loader) write(ctx context.Context, query string, params map[string]any) error {
	session := l.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: l.database,
	})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, query, params); err != nil {
		return errors.Wrap(err, "Loader", "write", "run batch")
	}
	return nil
}

// SanitizeName converts an IRI local name into a safe Neo4j label or
// relationship type: letters, digits and underscores only, starting with a
// letter. Empty or fully stripped names become "Resource".
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return "Resource"
	}
	if !unicode.IsLetter(rune(out[0])) {
		out = "N" + out
	}
	return out
}

// PropertyValue converts a literal to a Neo4j property value, preserving
// integer, float and boolean types where the lexical form parses cleanly.
func PropertyValue(lit owl.Literal) any {
	dt := lit.Datatype().Local()
	switch dt {
	case "integer", "int", "long", "short", "byte", "nonNegativeInteger", "positiveInteger":
		if n, err := strconv.ParseInt(lit.Lexical(), 10, 64); err == nil {
			return n
		}
	case "double", "float", "decimal":
		if f, err := strconv.ParseFloat(lit.Lexical(), 64); err == nil {
			return f
		}
	case "boolean":
		if v, err := strconv.ParseBool(lit.Lexical()); err == nil {
			return v
		}
	}
	return lit.Lexical()
}

// Chunk splits rows into slices of at most size elements.
func Chunk(rows []map[string]any, size int) [][]map[string]any {
	if size <= 0 {
		size = len(rows)
	}
	var out [][]map[string]any
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		out = append(out, rows[start:end])
	}
	return out
}
