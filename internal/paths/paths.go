// Package paths resolves the configuration directory and the on-disk
// database location from layered configuration.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// DefaultConfigDirName is the CWD-relative configuration directory.
const DefaultConfigDirName = ".glance"

// Environment variable names for overrides.
const (
	EnvConfigDir    = "GLANCE_CONFIG_DIR"
	EnvDatabasePath = "GLANCE_DATABASE"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > GLANCE_CONFIG_DIR env > $(CWD)/.glance.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDatabasePath returns the validated, absolute database path
// following the precedence chain: flag > configured value > the named
// environment variable (EnvDatabasePath when envVar is empty). There is
// no implicit default location: operating on the wrong database silently
// is worse than failing loudly, so an empty chain is ErrNoDatabasePath.
//
// Only the first present candidate is considered. A candidate that is
// present but invalid (missing file, directory, unreadable) rejects
// immediately rather than falling through to the next tier, so a typo'd
// flag is never masked by a stale environment variable.
func ResolveDatabasePath(flag, configured, envVar string) (string, error) {
	if envVar == "" {
		envVar = EnvDatabasePath
	}

	candidate := flag
	if candidate == "" {
		candidate = configured
	}
	if candidate == "" {
		candidate = os.Getenv(envVar)
	}
	if candidate == "" {
		return "", fmt.Errorf(
			"provide --database, set database in config.yaml, or set %s: %w",
			envVar, types.ErrNoDatabasePath)
	}

	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", fmt.Errorf("resolving database path %q: %w", candidate, err)
	}
	if err := ValidateDatabasePath(abs); err != nil {
		return "", err
	}
	return abs, nil
}

// ValidateDatabasePath checks that path exists, is a regular file, and is
// readable by the process.
func ValidateDatabasePath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", path, types.ErrDatabaseNotFound)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, types.ErrDatabaseNotFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, types.ErrDatabaseNotReadable)
	}
	return f.Close()
}
