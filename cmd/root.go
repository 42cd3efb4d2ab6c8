package cmd

import (
	"fmt"
	"os"

	"mod-compat/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mod-compat",
	Short: "Plugin compatibility service for multiplayer lobbies",
	Long: `mod-compat publishes a host's plugin inventory into lobby metadata and tells
joining clients whether their own plugins are compatible with it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console output with ISO8601 timestamps for CLI users.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
