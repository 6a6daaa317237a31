package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSamples(); err != nil {
		return err
	}
	if err := c.validatePipe(); err != nil {
		return err
	}
	if err := c.validateProject(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigLocation
		}
		return fmt.Errorf("paths.output_dir is required. Set %s or edit %s (create with 'docimages config init')", outputDirEnv, defaultPath)
	}
	return nil
}

func (c *Config) validateSamples() error {
	if c.Samples.Mono == "" {
		return errors.New("samples.mono must be set")
	}
	if c.Samples.Stereo == "" {
		return errors.New("samples.stereo must be set")
	}
	return nil
}

func (c *Config) validatePipe() error {
	if c.Pipe.ResponseTimeout < 0 {
		return errors.New("pipe.response_timeout must be >= 0")
	}
	if (c.Pipe.ToPath == "") != (c.Pipe.FromPath == "") {
		return errors.New("pipe.to_path and pipe.from_path must be set together")
	}
	return nil
}

func (c *Config) validateProject() error {
	if c.Project.Width <= 0 || c.Project.Height <= 0 {
		return errors.New("project.width and project.height must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
