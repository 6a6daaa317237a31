package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"docimages/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory. Output and
// log directories live under it and both sample recordings exist as small
// placeholder files.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "shots")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Samples.Mono = filepath.Join(base, "samples", "mono.wav")
	cfgVal.Samples.Stereo = filepath.Join(base, "samples", "stereo.wav")
	WriteFile(t, cfgVal.Samples.Mono, 44)
	WriteFile(t, cfgVal.Samples.Stereo, 44)

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPipePaths points the pipe endpoints at paths under the temp directory.
func WithPipePaths(toName, fromName string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipe.ToPath = filepath.Join(b.baseDir, toName)
		b.cfg.Pipe.FromPath = filepath.Join(b.baseDir, fromName)
	}
}

// WithResponseTimeout bounds the wait for each response, in seconds.
func WithResponseTimeout(seconds int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipe.ResponseTimeout = seconds
	}
}

// WithStopOnFailure makes command failures stop the run.
func WithStopOnFailure() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipe.StopOnFailure = true
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, audacity is stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"audacity"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(binDir, name), script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
