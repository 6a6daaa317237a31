package main

import (
	"github.com/spf13/cobra"

	"docimages/internal/session"
)

func newRootCommand(sessionOpts ...session.Option) *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag, sessionOpts)

	rootCmd := &cobra.Command{
		Use:           "docimages",
		Short:         "Capture Audacity manual screenshots over mod-script-pipe",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newExecCommand(ctx))
	rootCmd.AddCommand(newSetsCommand())
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
