// Package deploy implements the deploy command: recreate the symlinks for
// already-tracked dotfiles, typically on a machine where the dotfiles
// directory was just cloned and the links are missing.
package deploy

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

// Options holds options for the deploy command
type Options struct {
	Paths      []string
	All        bool     // deploy every tracked entry instead of named paths
	ConfigPath string   // registry file; empty means the default location
	FileSystem types.FS // allow injecting a filesystem for testing
}

// DeployFiles recreates the symlink for each named link path. Deploying an
// entry whose link already points at its stow path is a no-op success;
// deploying onto an occupied, non-matching path fails for that file only.
func DeployFiles(opts Options) (*types.DeployResult, error) {
	logger := logging.GetLogger("commands.deploy")
	logger.Info().
		Strs("paths", opts.Paths).
		Bool("all", opts.All).
		Msg("Deploying files")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = paths.ConfigFilePath()
	}

	reg, err := registry.Load(fsys, configPath)
	if err != nil {
		return nil, err
	}

	store := linkstore.New(fsys)
	result := &types.DeployResult{}

	deployEntry := func(entry types.DotfileEntry) {
		if err := store.LinkBack(entry.StowPath, entry.LinkPath); err != nil {
			logger.Error().Str("path", entry.LinkPath).Err(err).Msg("Failed to deploy file")
			result.Failures = append(result.Failures, types.FileFailure{Path: entry.LinkPath, Err: err})
			return
		}
		result.Deployed = append(result.Deployed, entry)
	}

	if opts.All {
		for _, entry := range reg.Entries() {
			deployEntry(entry)
		}
	} else {
		for _, path := range opts.Paths {
			linkPath, err := filepath.Abs(paths.ExpandHome(path))
			if err != nil {
				result.Failures = append(result.Failures, types.FileFailure{
					Path: path,
					Err:  errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", path),
				})
				continue
			}

			entry, found := reg.Find(linkPath)
			if !found {
				result.Failures = append(result.Failures, types.FileFailure{
					Path: path,
					Err:  errors.Newf(errors.ErrNotTracked, "no entry for %s", linkPath),
				})
				continue
			}

			deployEntry(entry)
		}
	}

	// Deploy never modifies the registry, so there is nothing to save

	logger.Info().
		Int("deployed", len(result.Deployed)).
		Int("failed", len(result.Failures)).
		Msg("Deploy command completed")
	return result, nil
}
