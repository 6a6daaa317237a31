package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"docimages/internal/config"
	"docimages/internal/session"
)

const defaultExecCommand = "Help: Command=Help"

func newExecCommand(ctx *commandContext) *cobra.Command {
	overrides := &pipeOverrides{}
	cmd := &cobra.Command{
		Use:   "exec [command]",
		Short: "Send one raw scripting command and print the response",
		Long: "Send one raw scripting command and print the response.\n" +
			"Without arguments the Help command is sent as a connectivity check.",
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.TrimSpace(strings.Join(args, " "))
			if command == "" {
				command = defaultExecCommand
			}
			return ctx.withSession(cmd, overrides, func(runCtx context.Context, _ *config.Config, sess *session.Session, _ *slog.Logger) error {
				response, err := sess.Execute(runCtx, command)
				if response != "" {
					fmt.Fprint(cmd.OutOrStdout(), response)
				}
				return err
			})
		},
	}
	overrides.register(cmd)
	return cmd
}
