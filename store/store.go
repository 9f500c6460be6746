// Package store persists ontology snapshots in a local BadgerDB.
// Snapshots are stored as functional-syntax documents, so anything saved
// here can also be read by any functional-syntax tool.
package store

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sort"
	"strings"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/serialize"
)

const keyPrefix = "ontology/"

// Store is a named-snapshot store for ontologies.
type Store struct {
	db         *badger.DB
	serializer serialize.Serializer
	parser     serialize.Parser
	logger     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger; without one the store is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// Open opens (or creates) a store at the given directory.
func Open(path string, opts ...Option) (*Store, error) {
	badgerOpts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, errors.Wrap(err, "Store", "Open", "open badger at "+path)
	}

	s := &Store{
		db:         db,
		serializer: &serialize.FunctionalSerializer{},
		parser:     &serialize.FunctionalParser{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "Store", "Close", "close badger")
	}
	return nil
}

// Save writes the ontology under the given name, replacing any previous
// snapshot with that name.
func (s *Store) Save(ctx context.Context, name string, ont *ontology.Ontology) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := s.serializer.Serialize(ont)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+name), []byte(doc))
	})
	if err != nil {
		return errors.Wrap(err, "Store", "Save", "write snapshot "+name)
	}

	if s.logger != nil {
		s.logger.Info("saved ontology snapshot",
			"name", name,
			"axioms", ont.AxiomCount())
	}
	return nil
}

// Load reads the named snapshot back into an ontology.
func (s *Store) Load(ctx context.Context, name string) (*ontology.Ontology, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + name))
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrap(errors.ErrOntologyNotFound, "Store", "Load", "no snapshot named "+name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "Store", "Load", "read snapshot "+name)
	}

	return s.parser.Parse(string(doc))
}

// List returns the names of all stored snapshots, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "Store", "List", "iterate snapshots")
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named snapshot. Deleting an absent snapshot is an
// error, so callers can distinguish a typo from a cleanup.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(keyPrefix + name)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.Wrap(errors.ErrOntologyNotFound, "Store", "Delete", "no snapshot named "+name)
	}
	if err != nil {
		return errors.Wrap(err, "Store", "Delete", "delete snapshot "+name)
	}

	if s.logger != nil {
		s.logger.Info("deleted ontology snapshot", "name", name)
	}
	return nil
}

func checkName(name string) error {
	if name == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "Store", "checkName", "empty snapshot name")
	}
	if strings.Contains(name, "/") {
		return errors.Wrap(errors.ErrInvalidConfig, "Store", "checkName",
			"snapshot name must not contain '/': "+name)
	}
	return nil
}
