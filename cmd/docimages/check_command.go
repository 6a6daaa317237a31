package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docimages/internal/preflight"
	"docimages/internal/session"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check pipes, sample recordings, and output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			ep := session.EndpointsFromConfig(cfg)
			for _, line := range renderSectionHeader("Endpoints", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Write", statusInfo, ep.WritePath, colorize))
			fmt.Fprintln(out, renderStatusLine("Read", statusInfo, ep.ReadPath, colorize))
			fmt.Fprintln(out, renderStatusLine("Terminator", statusInfo, fmt.Sprintf("%q", ep.Terminator), colorize))
			fmt.Fprintln(out)

			results := preflight.RunAll(cfg)
			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, r := range results {
				fmt.Fprintln(out, renderStatusLine(r.Name, resultKind(r), r.Detail, colorize))
			}
			if preflight.Failed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}
}

func resultKind(r preflight.Result) statusKind {
	switch {
	case r.Passed:
		return statusOK
	case r.Optional:
		return statusWarn
	default:
		return statusError
	}
}
