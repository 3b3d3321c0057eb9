// Package linkstore implements the filesystem primitives behind stow,
// deploy and restore: moving a file between the live tree and the dotfiles
// directory, and creating or removing the symlink that replaces it.
//
// It is the only package that mutates the filesystem. The ordering rule is
// that a move must be fully complete before the corresponding link step is
// attempted, so a failure between the two leaves the file recoverable at
// the destination rather than lost. Moves use rename, which the OS
// provides atomically within one filesystem.
package linkstore

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/rs/zerolog"
)

// Store performs move+symlink operations and their inverses
type Store struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Store operating on the given filesystem
func New(fsys types.FS) *Store {
	return &Store{
		fs:     fsys,
		logger: logging.GetLogger("linkstore"),
	}
}

// Relocate moves src (a file or directory) into dstDir, preserving the
// basename, and returns the resulting stow path. On success the original
// src path no longer exists.
func (s *Store) Relocate(src, dstDir string) (string, error) {
	return s.move(src, dstDir)
}

// RelocateBack moves a stowed file back into dstDir, the original parent
// of its link path. Inverse of Relocate.
func (s *Store) RelocateBack(stowPath, dstDir string) (string, error) {
	return s.move(stowPath, dstDir)
}

// LinkBack creates a symbolic link at linkPath pointing to stowPath.
// A symlink already resolving to stowPath is a no-op success; anything
// else occupying linkPath fails with LINK_PATH_OCCUPIED and is left
// untouched, so an existing file is never lost to an overwrite.
func (s *Store) LinkBack(stowPath, linkPath string) error {
	if _, err := s.fs.Lstat(linkPath); err == nil {
		if target, rerr := s.fs.Readlink(linkPath); rerr == nil && filepath.Clean(target) == filepath.Clean(stowPath) {
			s.logger.Debug().
				Str("link", linkPath).
				Str("target", stowPath).
				Msg("Link already correct, skipping")
			return nil
		}
		return errors.Newf(errors.ErrLinkPathOccupied, "refusing to overwrite %s", linkPath).
			WithDetail("link_path", linkPath).
			WithDetail("stow_path", stowPath)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrIO, "cannot stat %s", linkPath)
	}

	// Deploying onto a fresh machine may need intermediate directories
	if err := s.fs.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create parent directory for %s", linkPath)
	}

	if err := s.fs.Symlink(stowPath, linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create symlink %s", linkPath)
	}

	s.logger.Info().
		Str("link", linkPath).
		Str("target", stowPath).
		Msg("Created symlink")
	return nil
}

// Unlink removes the symlink at linkPath. The path must exist and be a
// symlink; regular files are never removed here.
func (s *Store) Unlink(linkPath string) error {
	info, err := s.fs.Lstat(linkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrMissingLink, "no symlink at %s", linkPath)
		}
		return errors.Wrapf(err, errors.ErrIO, "cannot stat %s", linkPath)
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return errors.Newf(errors.ErrNotASymlink, "%s exists but is not a symlink", linkPath)
	}

	if err := s.fs.Remove(linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot remove symlink %s", linkPath)
	}

	s.logger.Info().Str("link", linkPath).Msg("Removed symlink")
	return nil
}

func (s *Store) move(src, dstDir string) (string, error) {
	if _, err := s.fs.Lstat(src); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrSourceMissing, "source does not exist: %s", src)
		}
		return "", errors.Wrapf(err, errors.ErrIO, "cannot stat %s", src)
	}

	dst := filepath.Join(dstDir, filepath.Base(src))
	if _, err := s.fs.Lstat(dst); err == nil {
		return "", errors.Newf(errors.ErrAlreadyExists, "destination already exists: %s", dst).
			WithDetail("source", src).
			WithDetail("destination", dst)
	} else if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot stat %s", dst)
	}

	if err := s.fs.MkdirAll(dstDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot create directory %s", dstDir)
	}

	if err := s.fs.Rename(src, dst); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot move %s to %s", src, dst)
	}

	s.logger.Info().Str("source", src).Str("destination", dst).Msg("Moved file")
	return dst, nil
}
