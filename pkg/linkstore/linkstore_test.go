// pkg/linkstore/linkstore_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (rename + symlink semantics)
// PURPOSE: Test the move+symlink primitives and their failure modes

package linkstore_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/filesystem"
	"github.com/arthur-debert/dotstow/pkg/linkstore"
	"github.com/arthur-debert/dotstow/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *linkstore.Store {
	return linkstore.New(filesystem.NewOS())
}

func TestRelocate(t *testing.T) {
	t.Run("moves_file_into_destination", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		src := testutil.CreateFile(t, root, ".bashrc", "export PATH=$PATH")
		dotfiles := filepath.Join(root, "dotfiles")

		stowPath, err := newStore().Relocate(src, dotfiles)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dotfiles, ".bashrc"), stowPath)
		assert.False(t, testutil.PathExists(t, src), "source should no longer exist")
		assert.Equal(t, "export PATH=$PATH", testutil.ReadFile(t, stowPath))
	})

	t.Run("moves_directory_recursively", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		srcDir := testutil.CreateDir(t, root, ".config")
		testutil.CreateFile(t, srcDir, "nvim/init.lua", "vim.opt.number = true")
		dotfiles := filepath.Join(root, "dotfiles")

		stowPath, err := newStore().Relocate(srcDir, dotfiles)
		require.NoError(t, err)

		assert.True(t, testutil.DirExists(t, stowPath))
		assert.Equal(t, "vim.opt.number = true",
			testutil.ReadFile(t, filepath.Join(stowPath, "nvim", "init.lua")))
		assert.False(t, testutil.PathExists(t, srcDir))
	})

	t.Run("missing_source_fails", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")

		_, err := newStore().Relocate(filepath.Join(root, "missing"), filepath.Join(root, "dotfiles"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceMissing))
	})

	t.Run("destination_collision_fails", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		src := testutil.CreateFile(t, root, ".bashrc", "new content")
		dotfiles := testutil.CreateDir(t, root, "dotfiles")
		testutil.CreateFile(t, dotfiles, ".bashrc", "old content")

		_, err := newStore().Relocate(src, dotfiles)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		// Neither side is touched on collision
		assert.Equal(t, "new content", testutil.ReadFile(t, src))
		assert.Equal(t, "old content", testutil.ReadFile(t, filepath.Join(dotfiles, ".bashrc")))
	})
}

func TestLinkBack(t *testing.T) {
	t.Run("creates_symlink", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		stowPath := testutil.CreateFile(t, root, "dotfiles/.bashrc", "content")
		linkPath := filepath.Join(root, ".bashrc")

		require.NoError(t, newStore().LinkBack(stowPath, linkPath))

		assert.True(t, testutil.SymlinkExists(t, linkPath))
		assert.Equal(t, stowPath, testutil.ReadSymlink(t, linkPath))
	})

	t.Run("creates_missing_parent_directories", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		stowPath := testutil.CreateFile(t, root, "dotfiles/init.lua", "content")
		linkPath := filepath.Join(root, ".config", "nvim", "init.lua")

		require.NoError(t, newStore().LinkBack(stowPath, linkPath))
		assert.True(t, testutil.SymlinkExists(t, linkPath))
	})

	t.Run("correct_existing_link_is_noop", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		stowPath := testutil.CreateFile(t, root, "dotfiles/.bashrc", "content")
		linkPath := filepath.Join(root, ".bashrc")
		testutil.CreateSymlink(t, stowPath, linkPath)

		require.NoError(t, newStore().LinkBack(stowPath, linkPath))
		assert.Equal(t, stowPath, testutil.ReadSymlink(t, linkPath))
	})

	t.Run("occupied_by_regular_file_fails_untouched", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		stowPath := testutil.CreateFile(t, root, "dotfiles/.bashrc", "stowed")
		linkPath := testutil.CreateFile(t, root, ".bashrc", "precious local file")

		err := newStore().LinkBack(stowPath, linkPath)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrLinkPathOccupied))

		// The occupying file is never overwritten
		assert.False(t, testutil.SymlinkExists(t, linkPath))
		assert.Equal(t, "precious local file", testutil.ReadFile(t, linkPath))
	})

	t.Run("occupied_by_foreign_symlink_fails", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		stowPath := testutil.CreateFile(t, root, "dotfiles/.bashrc", "stowed")
		other := testutil.CreateFile(t, root, "other", "other")
		linkPath := filepath.Join(root, ".bashrc")
		testutil.CreateSymlink(t, other, linkPath)

		err := newStore().LinkBack(stowPath, linkPath)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrLinkPathOccupied))
		assert.Equal(t, other, testutil.ReadSymlink(t, linkPath))
	})
}

func TestUnlink(t *testing.T) {
	t.Run("removes_symlink_only", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		target := testutil.CreateFile(t, root, "dotfiles/.bashrc", "content")
		linkPath := filepath.Join(root, ".bashrc")
		testutil.CreateSymlink(t, target, linkPath)

		require.NoError(t, newStore().Unlink(linkPath))

		assert.False(t, testutil.PathExists(t, linkPath))
		assert.True(t, testutil.FileExists(t, target), "link target must survive")
	})

	t.Run("regular_file_fails", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		file := testutil.CreateFile(t, root, ".bashrc", "content")

		err := newStore().Unlink(file)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotASymlink))
		assert.True(t, testutil.FileExists(t, file))
	})

	t.Run("missing_path_fails", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")

		err := newStore().Unlink(filepath.Join(root, "missing"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingLink))
	})
}

func TestRelocateBack(t *testing.T) {
	t.Run("returns_file_to_original_parent", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		stowPath := testutil.CreateFile(t, root, "dotfiles/.bashrc", "content")
		home := testutil.CreateDir(t, root, "home")

		restored, err := newStore().RelocateBack(stowPath, home)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(home, ".bashrc"), restored)
		assert.Equal(t, "content", testutil.ReadFile(t, restored))
		assert.False(t, testutil.PathExists(t, stowPath))
	})

	t.Run("collision_at_original_location_fails", func(t *testing.T) {
		root := testutil.TempDir(t, "linkstore-test")
		stowPath := testutil.CreateFile(t, root, "dotfiles/.bashrc", "stowed")
		home := testutil.CreateDir(t, root, "home")
		testutil.CreateFile(t, home, ".bashrc", "local")

		_, err := newStore().RelocateBack(stowPath, home)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.True(t, testutil.FileExists(t, stowPath), "stowed copy must survive the failure")
	})
}
