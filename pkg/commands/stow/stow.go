// Package stow implements the stow command: move files into the dotfiles
// directory, replace them with symlinks, and track them in the registry.
package stow

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

// Options holds options for the stow command
type Options struct {
	SymlinkDir  string
	DotfilesDir string
	Paths       []string
	ConfigPath  string   // registry file; empty means the default location
	FileSystem  types.FS // allow injecting a filesystem for testing
}

// StowFiles moves each path into the dotfiles directory, creates a symlink
// at the original location, and records the entry in the registry.
//
// Paths are processed independently: one failure is recorded and the rest
// continue. A file that was moved but could not be linked is reported as
// orphaned and left at the stow location, untracked; it is never rolled
// back, because rollback risks masking a second failure. The registry is
// persisted with only the entries that fully completed.
func StowFiles(opts Options) (*types.StowResult, error) {
	logger := logging.GetLogger("commands.stow")
	logger.Info().
		Str("symlink_dir", opts.SymlinkDir).
		Str("dotfiles_dir", opts.DotfilesDir).
		Strs("paths", opts.Paths).
		Msg("Stowing files")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = paths.ConfigFilePath()
	}

	symlinkDir, err := absDir(fsys, opts.SymlinkDir)
	if err != nil {
		return nil, err
	}
	dotfilesDir, err := filepath.Abs(paths.ExpandHome(opts.DotfilesDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve dotfiles dir %s", opts.DotfilesDir)
	}

	reg, err := registry.Load(fsys, configPath)
	if err != nil {
		return nil, err
	}
	if err := reg.SetRoots(symlinkDir, dotfilesDir); err != nil {
		return nil, err
	}

	store := linkstore.New(fsys)
	result := &types.StowResult{}

	for _, path := range opts.Paths {
		entry, orphaned, err := stowSingle(fsys, store, reg, symlinkDir, dotfilesDir, path)
		switch {
		case orphaned != nil:
			logger.Warn().
				Str("path", path).
				Err(orphaned.Err).
				Msg("File relocated but not linked")
			result.Orphaned = append(result.Orphaned, *orphaned)
		case err != nil:
			logger.Error().Str("path", path).Err(err).Msg("Failed to stow file")
			result.Failures = append(result.Failures, types.FileFailure{Path: path, Err: err})
		default:
			result.Stowed = append(result.Stowed, *entry)
		}
	}

	if err := reg.Save(fsys); err != nil {
		return result, err
	}

	logger.Info().
		Int("stowed", len(result.Stowed)).
		Int("orphaned", len(result.Orphaned)).
		Int("failed", len(result.Failures)).
		Msg("Stow command completed")
	return result, nil
}

// stowSingle handles one file. A non-nil orphaned return means the file
// was moved into the dotfiles directory but the link step failed.
func stowSingle(fsys types.FS, store *linkstore.Store, reg *registry.Registry, symlinkDir, dotfilesDir, path string) (*types.DotfileEntry, *types.FileFailure, error) {
	linkPath, err := paths.ResolveUnder(path, symlinkDir)
	if err != nil {
		return nil, nil, err
	}

	// Registry and type checks happen before any filesystem mutation
	if _, tracked := reg.Find(linkPath); tracked {
		return nil, nil, errors.Newf(errors.ErrDuplicateLinkPath, "already tracking %s", linkPath)
	}
	if !paths.IsRegularFileOrDir(fsys, linkPath) {
		if _, serr := fsys.Lstat(linkPath); serr != nil {
			return nil, nil, errors.Newf(errors.ErrSourceMissing, "source does not exist: %s", linkPath)
		}
		return nil, nil, errors.Newf(errors.ErrInvalidInput, "%s is not a regular file or directory", linkPath)
	}

	stowPath, err := store.Relocate(linkPath, dotfilesDir)
	if err != nil {
		return nil, nil, err
	}

	if err := store.LinkBack(stowPath, linkPath); err != nil {
		return nil, &types.FileFailure{Path: stowPath, Err: err}, nil
	}

	entry := types.DotfileEntry{LinkPath: linkPath, StowPath: stowPath}
	if err := reg.Add(entry); err != nil {
		// Tracked state was verified before the move; this is a bug guard
		return nil, nil, err
	}

	return &entry, nil, nil
}

func absDir(fsys types.FS, dir string) (string, error) {
	abs, err := filepath.Abs(paths.ExpandHome(dir))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve directory %s", dir)
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		return "", errors.Newf(errors.ErrInvalidInput, "directory does not exist: %s", abs)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidInput, "not a directory: %s", abs)
	}

	return abs, nil
}
