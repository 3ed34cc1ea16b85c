// Package ingest adapts the csvtable reader and writer to the consolidate domain ports
package ingest

import (
	"repoinventory/internal/adapters/csvtable"
	"repoinventory/internal/services/consolidate/domain"
)

// tables adapts csvtable to domain.Tables
type tables struct{}

// NewTables returns CSV backed domain.Tables
func NewTables() domain.Tables { return tables{} }

func (tables) Open(path string, required ...string) (domain.RowReader, error) {
	r, err := csvtable.Open(path, required...)
	if err != nil {
		return nil, err
	}
	return &reader{r: r}, nil
}

func (tables) Create(path string, header []string) (domain.RowWriter, error) {
	w, err := csvtable.Create(path, header)
	if err != nil {
		return nil, err
	}
	return w, nil
}

type reader struct {
	r *csvtable.Reader
}

func (r *reader) Next() (domain.Row, error) {
	row, err := r.r.Next()
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *reader) Close() error { return r.r.Close() }

// Normalizer wraps a core normalizer to satisfy domain.Normalizer
type normalizer struct {
	inner interface{ Normalize(string) string }
}

// NewNormalizer constructs a new Normalizer
func NewNormalizer(inner interface{ Normalize(string) string }) domain.Normalizer {
	return normalizer{inner: inner}
}

// Normalize normalizes the given string
func (n normalizer) Normalize(s string) string { return n.inner.Normalize(s) }
