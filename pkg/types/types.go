package types

// DotfileEntry records one tracked dotfile: the live path that holds the
// symlink and the path of the relocated content inside the dotfiles
// directory. Once an entry is active, LinkPath is a symlink resolving to
// StowPath and StowPath is a regular file or directory that exists.
type DotfileEntry struct {
	LinkPath string `toml:"link_path"`
	StowPath string `toml:"stow_path"`
}

// FileFailure records a per-file error from stow, deploy or restore.
// Files are processed independently, so one failure never aborts the rest.
type FileFailure struct {
	Path string
	Err  error
}

// StowResult reports the outcome of a stow run.
//
// Orphaned lists files that were moved into the dotfiles directory but for
// which the symlink step failed. They are not tracked in the registry and
// are not rolled back; the user recovers them from the stow location.
type StowResult struct {
	Stowed   []DotfileEntry
	Orphaned []FileFailure
	Failures []FileFailure
}

// DeployResult reports the outcome of a deploy run.
type DeployResult struct {
	Deployed []DotfileEntry
	Failures []FileFailure
}

// RestoreResult reports the outcome of a restore run.
type RestoreResult struct {
	Restored []DotfileEntry
	Failures []FileFailure
}
