package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"docimages/internal/config"
	"docimages/internal/driver"
	"docimages/internal/imagesets"
	"docimages/internal/session"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	overrides := &pipeOverrides{}
	cmd := &cobra.Command{
		Use:   "run [set...]",
		Short: "Run image sets (all sets in order when none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = imagesets.Names()
			}
			for _, name := range names {
				if _, ok := imagesets.Lookup(name); !ok {
					return fmt.Errorf("unknown image set %q; run `docimages sets` to list them", name)
				}
			}
			return ctx.withSession(cmd, overrides, func(runCtx context.Context, cfg *config.Config, sess *session.Session, logger *slog.Logger) error {
				d := driver.New(sess, driver.OptionsFromConfig(cfg), logger)
				if err := imagesets.Run(runCtx, d, names...); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Captured %d image set(s) into %s (%d failed command(s))\n",
					len(names), cfg.Paths.OutputDir, d.Failures())
				return nil
			})
		},
	}
	overrides.register(cmd)
	return cmd
}
