// Package module provides the consolidate module implementation
package module

import (
	"repoinventory/internal/modkit"

	"repoinventory/internal/core/normalize"
	"repoinventory/internal/services/consolidate/domain"
	"repoinventory/internal/services/consolidate/ingest"
	"repoinventory/internal/services/consolidate/service"
)

// Ports defines the consolidate module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the consolidate module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New wires the CSV tables, the key normalizer and the service using opts.
// Callers get opts from FromConfig(deps.Cfg)
func New(deps modkit.Deps, opts Options) *Module {
	tables := ingest.NewTables()
	norm := ingest.NewNormalizer(normalize.New())

	svc := service.New(tables, norm, service.Config{
		OwnersPath: opts.OwnersPath,
		ReposPath:  opts.ReposPath,
		OutputPath: opts.OutputPath,
		BadDates:   opts.Policy(),
	})

	m := &Module{deps: deps, opts: opts}
	m.ports = Ports{Runner: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "consolidate" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Options returns the options the module was built with
func (m *Module) Options() Options { return m.opts }

var _ modkit.Module = (*Module)(nil)
