package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSamples(); err != nil {
		return err
	}
	c.normalizePipe()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(outputDirEnv); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = value
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSamples() error {
	var err error
	if c.Samples.Mono, err = expandPath(strings.TrimSpace(c.Samples.Mono)); err != nil {
		return fmt.Errorf("samples.mono: %w", err)
	}
	if c.Samples.Stereo, err = expandPath(strings.TrimSpace(c.Samples.Stereo)); err != nil {
		return fmt.Errorf("samples.stereo: %w", err)
	}
	return nil
}

// Pipe paths are used verbatim: Windows named pipe paths must not be cleaned.
func (c *Config) normalizePipe() {
	c.Pipe.ToPath = strings.TrimSpace(c.Pipe.ToPath)
	c.Pipe.FromPath = strings.TrimSpace(c.Pipe.FromPath)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
