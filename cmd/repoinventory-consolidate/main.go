package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"repoinventory/internal/core/version"
	"repoinventory/internal/modkit"
	"repoinventory/internal/platform/config"
	perr "repoinventory/internal/platform/errors"
	"repoinventory/internal/platform/logger"

	consolidatemod "repoinventory/internal/services/consolidate/module"

	"github.com/google/uuid"
)

const serviceName = "repoinventory-consolidate"

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

// run executes one consolidation and returns the process exit status.
// The result line goes to stdout; logs and the error message go to stderr
func run(stdout, stderr io.Writer) int {
	// .env only fills variables the process does not already have
	dotenvErr := config.LoadDotenv(".env")

	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = serviceName
	}
	opt.Writer = stderr
	logger.Init(opt)

	ctx := logger.WithRun(context.Background(), uuid.NewString())
	l := logger.C(ctx)

	if dotenvErr != nil {
		return fail(l, stderr, dotenvErr)
	}

	bi := version.Info(serviceName)
	l.Debug().Str("version", bi.Version).Str("commit", bi.Commit).Str("date", bi.Date).Msg("starting")

	root := config.New()
	opts, err := consolidatemod.FromConfig(root)
	if err != nil {
		return fail(l, stderr, err)
	}

	deps := modkit.Deps{Cfg: root, Log: *l}
	cm := consolidatemod.New(deps, opts)
	ports := cm.Ports().(consolidatemod.Ports)

	if _, err := ports.Runner.Run(ctx); err != nil {
		return fail(l, stderr, err)
	}

	fmt.Fprintf(stdout, "consolidated inventory written to %s\n", opts.OutputPath)
	return 0
}

// fail logs err with its classification, echoes it to stderr and returns
// the matching exit status
func fail(l *logger.Logger, stderr io.Writer, err error) int {
	ev := l.Error().Err(err).Str("code", perr.CodeOf(err).String())
	if e, ok := perr.As(err); ok {
		if e.Field() != "" {
			ev = ev.Str("field", e.Field())
		}
		if e.Op() != "" {
			ev = ev.Str("op", e.Op())
		}
	}
	ev.Msg("consolidate failed")
	fmt.Fprintf(stderr, "error: %v\n", err)
	return perr.ExitCode(err)
}
