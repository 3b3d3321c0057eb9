// Package registry persists the set of tracked dotfiles. The registry is a
// single TOML file holding the configured roots and one entry per tracked
// dotfile. It is loaded wholesale at command start and saved wholesale at
// command end; concurrent invocations against the same file are unsupported.
package registry

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotstow/pkg/errors"
	"github.com/arthur-debert/dotstow/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Registry is the persisted mapping of tracked dotfiles, keyed by link
// path. Entries keep insertion order.
type Registry struct {
	SymlinkDir  string               `toml:"symlink_dir,omitempty"`
	DotfilesDir string               `toml:"dotfiles_dir,omitempty"`
	Dotfiles    []types.DotfileEntry `toml:"dotfiles,omitempty"`

	path string
}

// Load reads the registry from path. An absent file yields an empty
// registry; a malformed file fails with CONFIG_PARSE.
func Load(fsys types.FS, path string) (*Registry, error) {
	reg := &Registry{path: path}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read registry file %s", path)
	}

	if err := toml.Unmarshal(data, reg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "malformed registry file %s", path)
	}

	return reg, nil
}

// Save overwrites the registry file with the current entry set
func (r *Registry) Save(fsys types.FS) error {
	data, err := toml.Marshal(r)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot serialize registry")
	}

	if err := fsys.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create registry directory for %s", r.path)
	}

	if err := fsys.WriteFile(r.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write registry file %s", r.path)
	}

	return nil
}

// Path returns the file the registry persists to
func (r *Registry) Path() string {
	return r.path
}

// SetRoots records the symlink and dotfiles roots. Roots are set on the
// first stow; later stows against different roots are rejected so one
// registry file never mixes trees.
func (r *Registry) SetRoots(symlinkDir, dotfilesDir string) error {
	if r.SymlinkDir != "" && r.SymlinkDir != symlinkDir {
		return errors.Newf(errors.ErrInvalidInput,
			"registry already tracks symlink root %s, got %s", r.SymlinkDir, symlinkDir)
	}
	if r.DotfilesDir != "" && r.DotfilesDir != dotfilesDir {
		return errors.Newf(errors.ErrInvalidInput,
			"registry already tracks dotfiles root %s, got %s", r.DotfilesDir, dotfilesDir)
	}
	r.SymlinkDir = symlinkDir
	r.DotfilesDir = dotfilesDir
	return nil
}

// Add appends an entry. The link path must not already be tracked.
func (r *Registry) Add(entry types.DotfileEntry) error {
	if _, found := r.Find(entry.LinkPath); found {
		return errors.Newf(errors.ErrDuplicateLinkPath, "already tracking %s", entry.LinkPath)
	}
	r.Dotfiles = append(r.Dotfiles, entry)
	return nil
}

// Remove deletes the entry for linkPath
func (r *Registry) Remove(linkPath string) error {
	for i, entry := range r.Dotfiles {
		if entry.LinkPath == linkPath {
			r.Dotfiles = append(r.Dotfiles[:i], r.Dotfiles[i+1:]...)
			return nil
		}
	}
	return errors.Newf(errors.ErrNotTracked, "no entry for %s", linkPath)
}

// Find returns the entry for linkPath, if tracked
func (r *Registry) Find(linkPath string) (types.DotfileEntry, bool) {
	for _, entry := range r.Dotfiles {
		if entry.LinkPath == linkPath {
			return entry, true
		}
	}
	return types.DotfileEntry{}, false
}

// Entries returns the tracked entries in insertion order
func (r *Registry) Entries() []types.DotfileEntry {
	out := make([]types.DotfileEntry, len(r.Dotfiles))
	copy(out, r.Dotfiles)
	return out
}
