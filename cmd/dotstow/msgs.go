package dotstow

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Track dotfiles in one directory, leave symlinks behind"
	MsgRootLong = `dotstow manages dotfiles by moving tracked files into a dotfiles
directory and replacing the original path with a symlink. The tracked set is
recorded in a registry file so that every link can be recreated on a fresh
machine with a single deploy.`

	MsgStowShort = "Move files into the dotfiles directory and symlink them"
	MsgStowLong = `Stow moves each file into the dotfiles directory, creates a symlink at
the original location, and records the mapping in the registry. Each file is
processed independently; a failure on one file does not stop the others.

Files must live under the given symlink directory. Existing files at a
destination are never overwritten.`
	MsgStowExample = `  dotstow stow ~/ ~/.dotfiles ~/.bashrc
  dotstow stow ~/ ~/.dotfiles ~/.vimrc ~/.config/nvim`

	MsgDeployShort = "Recreate symlinks for tracked dotfiles"
	MsgDeployLong = `Deploy recreates the symlink for each tracked file, typically after
cloning the dotfiles directory onto a new machine. Deploying a link that is
already correct is a no-op; deploy never overwrites an existing file.`
	MsgDeployExample = `  dotstow deploy ~/.bashrc
  dotstow deploy --all`

	MsgRestoreShort = "Move tracked files back to their original locations"
	MsgRestoreLong = `Restore is the inverse of stow: the symlink is removed, the file moves
back from the dotfiles directory to its original path, and the registry
entry is dropped.`
	MsgRestoreExample = `  dotstow restore ~/.dotfiles ~/.bashrc`

	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Registry file (default is $XDG_CONFIG_HOME/dotstow/config.toml)"
	MsgFlagAll     = "Deploy every tracked entry"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrStowFiles   = "failed to stow files: %w"
	MsgErrDeployFiles = "failed to deploy files: %w"
	MsgErrRestoreFile = "failed to restore files: %w"
	MsgErrFilesFailed = "%d file(s) failed"
	MsgErrDeployArgs  = "provide file paths or --all"
)
