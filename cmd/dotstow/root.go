package dotstow

import (
	"fmt"

	"github.com/arthur-debert/dotstow/internal/version"
	"github.com/arthur-debert/dotstow/pkg/logging"
	"github.com/arthur-debert/dotstow/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "dotstow",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			style.Init()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but exit non-zero
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newStowCmd(&configPath))
	rootCmd.AddCommand(newDeployCmd(&configPath))
	rootCmd.AddCommand(newRestoreCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("dotstow version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}
