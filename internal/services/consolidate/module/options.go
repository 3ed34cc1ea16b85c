package module

import (
	"path/filepath"
	"strings"

	"repoinventory/internal/platform/config"
	perr "repoinventory/internal/platform/errors"
	"repoinventory/internal/platform/validate"
	"repoinventory/internal/services/consolidate/domain"
)

// Default locations, relative to the user's home directory
const (
	DefaultDirName    = "repo-inventory"
	DefaultOwnersFile = "repo_owners.csv"
	DefaultReposFile  = "repositories.csv"
	DefaultOutputFile = "repo_inventory.csv"
)

// Options holds configuration for the consolidate module
type Options struct {
	OwnersPath string `env:"OWNERS_PATH" validate:"required"`
	ReposPath  string `env:"REPOS_PATH" validate:"required,nefield=OwnersPath"`
	OutputPath string `env:"OUTPUT_PATH" validate:"required,nefield=OwnersPath,nefield=ReposPath"`
	BadDates   string `env:"BAD_DATES" validate:"oneof=now epoch"`
}

// Policy returns BadDates as a domain.DatePolicy
func (o Options) Policy() domain.DatePolicy { return domain.DatePolicy(o.BadDates) }

// homeDir is a seam for tests
var homeDir = config.HomeDir

// FromConfig reads options with the CORE_CONSOLIDATE_ prefix. Paths default
// to fixed file names under $HOME/repo-inventory, or under
// CORE_CONSOLIDATE_DIR when that is set. The result is validated
func FromConfig(cfg config.Conf) (Options, error) {
	c := cfg.Prefix("CORE_CONSOLIDATE_")

	dir := c.MayPath("DIR", "")
	if dir == "" {
		home, err := homeDir()
		if err != nil {
			return Options{}, perr.WithField(
				perr.Wrap(err, perr.ErrorCodeValidation, "cannot resolve home directory"),
				"CORE_CONSOLIDATE_DIR",
			)
		}
		dir = filepath.Join(home, DefaultDirName)
	}

	opts := Options{
		OwnersPath: c.MayPath("OWNERS_PATH", filepath.Join(dir, DefaultOwnersFile)),
		ReposPath:  c.MayPath("REPOS_PATH", filepath.Join(dir, DefaultReposFile)),
		OutputPath: c.MayPath("OUTPUT_PATH", filepath.Join(dir, DefaultOutputFile)),
		BadDates:   strings.ToLower(c.MayString("BAD_DATES", string(domain.DatePolicyNow))),
	}
	if err := validate.Struct(opts); err != nil {
		return Options{}, perr.WithOp(err, "consolidate.options")
	}
	return opts, nil
}
