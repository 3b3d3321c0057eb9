package dotstow

import (
	"fmt"

	"github.com/arthur-debert/dotstow/pkg/commands/deploy"
	"github.com/arthur-debert/dotstow/pkg/commands/restore"
	"github.com/arthur-debert/dotstow/pkg/commands/stow"
	"github.com/arthur-debert/dotstow/pkg/style"
	"github.com/spf13/cobra"
)

func newStowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "stow <symlink-dir> <dotfiles-dir> <file>...",
		Short:   MsgStowShort,
		Long:    MsgStowLong,
		Example: MsgStowExample,
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := stow.StowFiles(stow.Options{
				SymlinkDir:  args[0],
				DotfilesDir: args[1],
				Paths:       args[2:],
				ConfigPath:  *configPath,
			})
			if err != nil {
				return fmt.Errorf(MsgErrStowFiles, err)
			}

			cmd.Println(style.RenderStowResult(result))

			// Exit status reflects per-file failures; orphaned files count
			// as failures since manual recovery is needed
			if n := len(result.Failures) + len(result.Orphaned); n > 0 {
				return fmt.Errorf(MsgErrFilesFailed, n)
			}
			return nil
		},
	}
}

func newDeployCmd(configPath *string) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "deploy [<file>...]",
		Short:   MsgDeployShort,
		Long:    MsgDeployLong,
		Example: MsgDeployExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf(MsgErrDeployArgs)
			}

			result, err := deploy.DeployFiles(deploy.Options{
				Paths:      args,
				All:        all,
				ConfigPath: *configPath,
			})
			if err != nil {
				return fmt.Errorf(MsgErrDeployFiles, err)
			}

			cmd.Println(style.RenderDeployResult(result))

			if n := len(result.Failures); n > 0 {
				return fmt.Errorf(MsgErrFilesFailed, n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	return cmd
}

func newRestoreCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "restore <dotfiles-dir> <file>...",
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		Example: MsgRestoreExample,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := restore.RestoreFiles(restore.Options{
				DotfilesDir: args[0],
				Paths:       args[1:],
				ConfigPath:  *configPath,
			})
			if err != nil {
				return fmt.Errorf(MsgErrRestoreFile, err)
			}

			cmd.Println(style.RenderRestoreResult(result))

			if n := len(result.Failures); n > 0 {
				return fmt.Errorf(MsgErrFilesFailed, n)
			}
			return nil
		},
	}
}
