// Package restore implements the restore command: the inverse of stow.
// The symlink is removed, the stowed content moves back to its original
// location, and the registry entry is dropped.
package restore

import (
	"path/filepath"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/filesystem"
	"github.com/arthur-debert/dotstow/pkg/linkstore"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/paths"
	"github.com/arthur-debert/dotstow/pkg/registry"
	"github.com/arthur-debert/dotstow/pkg/types"
)

// Options holds options for the restore command
type Options struct {
	DotfilesDir string
	Paths       []string
	ConfigPath  string   // registry file; empty means the default location
	FileSystem  types.FS // allow injecting a filesystem for testing
}

// RestoreFiles moves each tracked file out of the dotfiles directory back
// to its original path and untracks it. Paths are processed independently;
// the registry is persisted with the entries that remain.
func RestoreFiles(opts Options) (*types.RestoreResult, error) {
	logger := logging.GetLogger("commands.restore")
	logger.Info().
		Str("dotfiles_dir", opts.DotfilesDir).
		Strs("paths", opts.Paths).
		Msg("Restoring files")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = paths.ConfigFilePath()
	}

	dotfilesDir, err := filepath.Abs(paths.ExpandHome(opts.DotfilesDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve dotfiles dir %s", opts.DotfilesDir)
	}

	reg, err := registry.Load(fsys, configPath)
	if err != nil {
		return nil, err
	}

	store := linkstore.New(fsys)
	result := &types.RestoreResult{}

	for _, path := range opts.Paths {
		entry, err := restoreSingle(store, reg, dotfilesDir, path)
		if err != nil {
			logger.Error().Str("path", path).Err(err).Msg("Failed to restore file")
			result.Failures = append(result.Failures, types.FileFailure{Path: path, Err: err})
			continue
		}
		result.Restored = append(result.Restored, *entry)
	}

	if err := reg.Save(fsys); err != nil {
		return result, err
	}

	logger.Info().
		Int("restored", len(result.Restored)).
		Int("failed", len(result.Failures)).
		Msg("Restore command completed")
	return result, nil
}

func restoreSingle(store *linkstore.Store, reg *registry.Registry, dotfilesDir, path string) (*types.DotfileEntry, error) {
	linkPath, err := filepath.Abs(paths.ExpandHome(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", path)
	}

	entry, found := reg.Find(linkPath)
	if !found {
		return nil, errors.Newf(errors.ErrNotTracked, "no entry for %s", linkPath)
	}

	// The stowed copy must live under the given dotfiles directory
	if _, err := paths.ResolveUnder(entry.StowPath, dotfilesDir); err != nil {
		return nil, err
	}

	if err := store.Unlink(entry.LinkPath); err != nil {
		return nil, err
	}

	if _, err := store.RelocateBack(entry.StowPath, filepath.Dir(entry.LinkPath)); err != nil {
		return nil, err
	}

	if err := reg.Remove(entry.LinkPath); err != nil {
		return nil, err
	}

	return &entry, nil
}
