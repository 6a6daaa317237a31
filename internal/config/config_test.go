package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"docimages/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("DOCIMAGES_OUTPUT_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantOutput := filepath.Join(tempHome, "docimages")
	if cfg.Paths.OutputDir != wantOutput {
		t.Fatalf("unexpected output dir: got %q want %q", cfg.Paths.OutputDir, wantOutput)
	}
	wantLogs := filepath.Join(tempHome, ".local", "share", "docimages", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.Samples.Mono != filepath.Join(tempHome, "Music", "The Poodle Podcast.wav") {
		t.Fatalf("unexpected mono sample: %q", cfg.Samples.Mono)
	}
	if cfg.Samples.Stereo != filepath.Join(tempHome, "Music", "PoodlePodStereo.wav") {
		t.Fatalf("unexpected stereo sample: %q", cfg.Samples.Stereo)
	}
	if cfg.Pipe.ResponseTimeout != 0 {
		t.Fatalf("expected unbounded response wait by default, got %d", cfg.Pipe.ResponseTimeout)
	}
	if cfg.Pipe.StopOnFailure {
		t.Fatal("expected stop_on_failure disabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "docimages.toml")
	t.Setenv("DOCIMAGES_OUTPUT_DIR", "")

	type payload struct {
		Paths struct {
			OutputDir string `toml:"output_dir"`
		} `toml:"paths"`
		Pipe struct {
			ToPath          string `toml:"to_path"`
			FromPath        string `toml:"from_path"`
			ResponseTimeout int    `toml:"response_timeout"`
			StopOnFailure   bool   `toml:"stop_on_failure"`
		} `toml:"pipe"`
		Project struct {
			Width  int `toml:"width"`
			Height int `toml:"height"`
		} `toml:"project"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.OutputDir = filepath.Join(tempDir, "shots")
	custom.Pipe.ToPath = filepath.Join(tempDir, "to")
	custom.Pipe.FromPath = filepath.Join(tempDir, "from")
	custom.Pipe.ResponseTimeout = 30
	custom.Pipe.StopOnFailure = true
	custom.Project.Width = 1024
	custom.Project.Height = 768
	custom.Logging.Format = " JSON "
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.OutputDir != custom.Paths.OutputDir {
		t.Fatalf("expected output dir from file, got %q", cfg.Paths.OutputDir)
	}
	if cfg.ResponseTimeout() != 30*time.Second {
		t.Fatalf("expected 30s response timeout, got %s", cfg.ResponseTimeout())
	}
	if !cfg.Pipe.StopOnFailure {
		t.Fatal("expected stop_on_failure from file")
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized json format, got %q", cfg.Logging.Format)
	}

	if cfg.Pipe.ToPath != custom.Pipe.ToPath || cfg.Pipe.FromPath != custom.Pipe.FromPath {
		t.Fatalf("expected pipe overrides, got %+v", cfg.Pipe)
	}
	if got := cfg.SetProjectCommand(); got != "SetProject: X=10 Y=10 Width=1024 Height=768" {
		t.Fatalf("unexpected SetProject command %q", got)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "docimages.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\nstaging_dir = \"/tmp\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestEnvVarOverridesOutputDir(t *testing.T) {
	override := filepath.Join(t.TempDir(), "env-shots")
	t.Setenv("DOCIMAGES_OUTPUT_DIR", override)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.OutputDir != override {
		t.Fatalf("expected output dir from env, got %q", cfg.Paths.OutputDir)
	}
}

func TestOutputPrefixEndsWithSeparator(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(t.TempDir(), "shots")
	prefix := cfg.OutputPrefix()
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		t.Fatalf("expected trailing separator, got %q", prefix)
	}
	cfg.Paths.OutputDir = prefix
	if cfg.OutputPrefix() != prefix {
		t.Fatalf("expected prefix to be stable, got %q", cfg.OutputPrefix())
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "mod-script-pipe") {
		t.Fatalf("sample config missing pipe guidance: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}

	if runtime.GOOS != "windows" {
		if !strings.Contains(cfg.Paths.OutputDir, "docimages") {
			t.Fatalf("expected output dir to contain docimages, got %q", cfg.Paths.OutputDir)
		}
	}
	if cfg.Project.Width != 850 || cfg.Project.Height != 800 {
		t.Fatalf("unexpected sample geometry: %+v", cfg.Project)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing output dir")
	}

	cfg = config.Default()
	cfg.Samples.Stereo = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing stereo sample")
	}

	cfg = config.Default()
	cfg.Pipe.ResponseTimeout = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative timeout")
	}

	cfg = config.Default()
	cfg.Pipe.ToPath = "/tmp/to"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when only one pipe override is set")
	}

	cfg = config.Default()
	cfg.Project.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero width")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}
