package domain

import "context"

// RunnerPort is the public port exposed by the module
type RunnerPort interface {
	Run(ctx context.Context) (Stats, error)
}

// RowReader streams rows from an input table; Next returns io.EOF when done
type RowReader interface {
	Next() (Row, error)
	Close() error
}

// RowWriter appends records to the output table
type RowWriter interface {
	Write(rec []string) error
	Close() error
}

// Tables opens input tables and creates the output table
type Tables interface {
	Open(path string, required ...string) (RowReader, error)
	Create(path string, header []string) (RowWriter, error)
}

// Normalizer derives join keys from repository names
type Normalizer interface {
	Normalize(s string) string
}
