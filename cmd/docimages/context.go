package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"docimages/internal/config"
	"docimages/internal/logging"
	"docimages/internal/session"
)

type commandContext struct {
	configFlag  *string
	sessionOpts []session.Option

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, sessionOpts []session.Option) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		sessionOpts: sessionOpts,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// pipeOverrides holds the per-invocation [pipe] overrides shared by run and exec.
type pipeOverrides struct {
	timeout       int
	stopOnFailure bool
}

func (o *pipeOverrides) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.timeout, "timeout", 0, "Seconds to wait for each response (0 waits forever)")
	cmd.Flags().BoolVar(&o.stopOnFailure, "stop-on-failure", false, "Stop when Audacity reports a command as failed")
}

func (o *pipeOverrides) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("timeout") {
		if o.timeout < 0 {
			return errors.New("--timeout must be >= 0")
		}
		cfg.Pipe.ResponseTimeout = o.timeout
	}
	if cmd.Flags().Changed("stop-on-failure") {
		cfg.Pipe.StopOnFailure = o.stopOnFailure
	}
	return nil
}

// withSession sets up a session for the duration of fn. The context passed to
// fn carries a fresh run id for log correlation.
func (c *commandContext) withSession(cmd *cobra.Command, overrides *pipeOverrides, fn func(context.Context, *config.Config, *session.Session, *slog.Logger) error) error {
	loaded, err := c.ensureConfig()
	if err != nil {
		return err
	}
	cfg := *loaded
	if overrides != nil {
		if err := overrides.apply(cmd, &cfg); err != nil {
			return err
		}
	}

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	ctx := logging.WithRunID(cmd.Context(), logging.NewRunID())
	sess := session.New(&cfg, logger, c.sessionOpts...)
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Warn("close session", logging.Error(err))
		}
	}()

	if err := sess.Setup(ctx); err != nil {
		return err
	}
	return fn(ctx, &cfg, sess, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
