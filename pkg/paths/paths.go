// Package paths provides centralized path handling for dotstow.
// It canonicalizes user-supplied paths, enforces the containment of link
// paths and stow paths under their configured roots, and resolves the
// per-user registry file location per the XDG Base Directory spec.
package paths

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/types"
)

// Environment variable names
const (
	// EnvConfigFile overrides the registry file location
	EnvConfigFile = "DOTSTOW_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigFileName is the name of the registry file
const ConfigFileName = "config.toml"

// AppDirName is the directory name for dotstow-specific files
const AppDirName = "dotstow"

// ExpandHome expands a leading ~ or ~/ in path to the user's home directory.
// Paths without a tilde prefix are returned unchanged.
func ExpandHome(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ResolveUnder canonicalizes candidate to an absolute, cleaned path and
// verifies it is a strict descendant of root. It never touches the
// filesystem beyond resolving the working directory for relative input.
func ResolveUnder(candidate, root string) (string, error) {
	absCandidate, err := filepath.Abs(ExpandHome(candidate))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", candidate)
	}

	absRoot, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve root %s", root)
	}

	rel, err := filepath.Rel(absRoot, absCandidate)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrPathNotUnderRoot, "%s is not under %s", absCandidate, absRoot).
			WithDetail("path", absCandidate).
			WithDetail("root", absRoot)
	}

	return absCandidate, nil
}

// IsSymlink reports whether path exists and is a symbolic link
func IsSymlink(fsys types.FS, path string) bool {
	info, err := fsys.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

// IsRegularFileOrDir reports whether path exists and is a regular file or
// a directory, i.e. not a symlink or other special file
func IsRegularFileOrDir(fsys types.FS, path string) bool {
	info, err := fsys.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() || info.IsDir()
}

// ConfigFilePath returns the location of the registry file. DOTSTOW_CONFIG
// takes precedence; the default is $XDG_CONFIG_HOME/dotstow/config.toml.
func ConfigFilePath() string {
	if override := os.Getenv(EnvConfigFile); override != "" {
		return override
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}
