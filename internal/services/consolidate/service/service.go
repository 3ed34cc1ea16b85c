// Package service provides the consolidate pipeline: load and de-duplicate
// owners, then left-join the repositories table onto them and write the result
package service

import (
	"context"
	stderrs "errors"
	"io"

	perr "repoinventory/internal/platform/errors"
	"repoinventory/internal/platform/logger"
	"repoinventory/internal/services/consolidate/domain"
)

// Config holds the file locations and the malformed date policy
type Config struct {
	OwnersPath string
	ReposPath  string
	OutputPath string
	BadDates   domain.DatePolicy
}

// Service implements domain.RunnerPort
type Service struct {
	Tables domain.Tables
	Norm   domain.Normalizer
	Cfg    Config
}

// New constructs the consolidate service
func New(t domain.Tables, n domain.Normalizer, cfg Config) *Service {
	if t == nil {
		panic("consolidate.Service requires non nil Tables")
	}
	if n == nil {
		panic("consolidate.Service requires a non nil Normalizer")
	}
	if cfg.BadDates == "" {
		cfg.BadDates = domain.DatePolicyNow
	}
	return &Service{Tables: t, Norm: n, Cfg: cfg}
}

// Run executes the pipeline once. The output file is flushed and closed on
// every path, so a failed run leaves a well-formed partial table
func (s *Service) Run(ctx context.Context) (st domain.Stats, err error) {
	log := logger.C(ctx)

	dd, err := s.LoadOwners(ctx, &st)
	if err != nil {
		return st, err
	}
	log.Info().
		Int("owner_rows", st.OwnerRows).
		Int("owner_keys", st.OwnerKeys).
		Int("collapsed", st.Collapsed()).
		Int("replaced", st.Replaced).
		Int("malformed_dates", st.MalformedDates).
		Msg("consolidate: owners loaded")

	drv, err := s.Tables.Open(s.Cfg.ReposPath, domain.DriverColumns...)
	if err != nil {
		return st, perr.WithOp(err, "repos.open")
	}
	defer func() {
		if cerr := drv.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	out, err := s.Tables.Create(s.Cfg.OutputPath, domain.MergedHeader)
	if err != nil {
		return st, perr.WithOp(err, "output.create")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err = s.Join(ctx, dd, drv, out, &st); err != nil {
		return st, err
	}

	log.Info().
		Int("driver_rows", st.DriverRows).
		Int("matched", st.Matched).
		Int("unmatched", st.Unmatched).
		Int("written", st.Written).
		Str("output", s.Cfg.OutputPath).
		Msg("consolidate: join complete")
	return st, nil
}

// LoadOwners reads the whole owners table into a Deduper
func (s *Service) LoadOwners(ctx context.Context, st *domain.Stats) (dd *Deduper, err error) {
	rr, err := s.Tables.Open(s.Cfg.OwnersPath, domain.OwnerColumns...)
	if err != nil {
		return nil, perr.WithOp(err, "owners.open")
	}
	defer func() {
		if cerr := rr.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	dd = NewDeduper(s.Norm, s.Cfg.BadDates, st)
	for {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeCanceled, "owners load interrupted")
		}
		row, err := rr.Next()
		if stderrs.Is(err, io.EOF) {
			return dd, nil
		}
		if err != nil {
			return nil, perr.WithOp(err, "owners.read")
		}
		dd.Add(domain.OwnerFromRow(row), row.Line())
	}
}

// Join streams driver rows, merges each with its owner match and writes it.
// Exactly one output row is written per driver row, in input order
func (s *Service) Join(ctx context.Context, dd *Deduper, drv domain.RowReader, out domain.RowWriter, st *domain.Stats) error {
	for {
		if err := ctx.Err(); err != nil {
			return perr.Wrap(err, perr.ErrorCodeCanceled, "join interrupted")
		}
		row, err := drv.Next()
		if stderrs.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return perr.WithOp(err, "repos.read")
		}
		st.DriverRows++

		rec := domain.DriverFromRow(row)
		owner, found := dd.Lookup(rec.RepoName)
		if found {
			st.Matched++
		} else {
			st.Unmatched++
		}

		if err := out.Write(Merge(rec, owner, found).Values()); err != nil {
			return perr.WithOp(err, "output.write")
		}
		st.Written++
	}
}
