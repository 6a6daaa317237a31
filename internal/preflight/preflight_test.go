package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docimages/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed || result.Detail == "" {
		t.Fatalf("expected failure with detail for missing dir, got %+v", result)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "sample.wav")
	testsupport.WriteFile(t, sample, 128)

	if result := CheckFile("sample", sample); !result.Passed || !strings.Contains(result.Detail, "128 bytes") {
		t.Fatalf("expected sample to pass, got %+v", result)
	}
	if result := CheckFile("sample", filepath.Join(dir, "missing.wav")); result.Passed {
		t.Fatal("expected missing sample to fail")
	}
	if result := CheckFile("sample", dir); result.Passed {
		t.Fatal("expected directory to fail")
	}
}

func TestCheckPipeMissing(t *testing.T) {
	result := CheckPipe("Command pipe", filepath.Join(t.TempDir(), "to"))
	if result.Passed {
		t.Fatal("expected missing pipe to fail")
	}
	if !strings.Contains(result.Detail, "mod-script-pipe") {
		t.Fatalf("expected guidance in detail, got %q", result.Detail)
	}
}

func TestCheckPipeRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "to")
	testsupport.WriteFile(t, path, 1)
	result := CheckPipe("Command pipe", path)
	if !result.Passed || !strings.Contains(result.Detail, "not a pipe") {
		t.Fatalf("expected regular file to pass with note, got %+v", result)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithPipePaths("to", "from"), testsupport.WithStubbedBinaries())
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	results := RunAll(cfg)
	byName := map[string]Result{}
	for _, r := range results {
		byName[r.Name] = r
	}
	if byName["Command pipe"].Passed || byName["Response pipe"].Passed {
		t.Fatalf("expected pipe checks to fail without Audacity: %+v", results)
	}
	for _, name := range []string{"Mono sample", "Stereo sample", "Output directory"} {
		if !byName[name].Passed {
			t.Fatalf("expected %s to pass, got %+v", name, byName[name])
		}
	}
	if audacity, ok := byName["Audacity"]; !ok || !audacity.Optional {
		t.Fatalf("expected optional Audacity check, got %+v", audacity)
	}
	if !Failed(results) {
		t.Fatal("expected overall failure while pipes are missing")
	}

	testsupport.WriteFile(t, cfg.Pipe.ToPath, 1)
	testsupport.WriteFile(t, cfg.Pipe.FromPath, 1)
	if results := RunAll(cfg); Failed(results) {
		t.Fatalf("expected all required checks to pass, got %+v", results)
	}
}
