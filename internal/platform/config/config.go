// Package config handles application configuration via environment variables
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	perr "repoinventory/internal/platform/errors"
	"repoinventory/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Conf is a namespaced view over environment variables (e.g., "CORE_CONSOLIDATE_")
// Use New() for global access, or Prefix() for module scopes.
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("CORE_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) get(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.get(key); v != "" {
		return v
	}
	return def
}

// MayPath is MayString for filesystem paths: a leading "~" expands to the
// user's home directory and the result is cleaned
func (c Conf) MayPath(key, def string) string {
	v := c.MayString(key, def)
	if v == "" {
		return ""
	}
	if v == "~" || strings.HasPrefix(v, "~/") {
		home, err := userHomeDir()
		if err != nil {
			logger.Get().Warn().Err(err).Str("key", c.key(key)).Msg("cannot expand ~; using value as is")
			return filepath.Clean(v)
		}
		v = filepath.Join(home, strings.TrimPrefix(v, "~"))
	}
	return filepath.Clean(v)
}

// userHomeDir is a seam for tests
var userHomeDir = os.UserHomeDir

// HomeDir returns the invoking user's home directory
func HomeDir() (string, error) { return userHomeDir() }

// LoadDotenv loads KEY=VALUE pairs from the given files into the process env.
// Variables already set win. Missing files are skipped; any other failure is returned.
// It does not log: it runs before the logger is configured
func LoadDotenv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return perr.Wrapf(err, perr.ErrorCodeValidation, "load %s", f)
		}
	}
	return nil
}
