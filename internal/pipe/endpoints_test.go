package pipe_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docimages/internal/pipe"
)

func TestEndpointsFor(t *testing.T) {
	tests := []struct {
		name string
		goos string
		uid  int
		want pipe.Endpoints
	}{
		{
			name: "windows",
			goos: "windows",
			uid:  0,
			want: pipe.Endpoints{WritePath: `\\.\pipe\ToSrvPipe`, ReadPath: `\\.\pipe\FromSrvPipe`, Terminator: "\r\n\x00"},
		},
		{
			name: "linux",
			goos: "linux",
			uid:  1000,
			want: pipe.Endpoints{WritePath: "/tmp/audacity_script_pipe.to.1000", ReadPath: "/tmp/audacity_script_pipe.from.1000", Terminator: "\n"},
		},
		{
			name: "darwin",
			goos: "darwin",
			uid:  501,
			want: pipe.Endpoints{WritePath: "/tmp/audacity_script_pipe.to.501", ReadPath: "/tmp/audacity_script_pipe.from.501", Terminator: "\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pipe.EndpointsFor(tt.goos, tt.uid); got != tt.want {
				t.Fatalf("EndpointsFor(%q, %d) = %+v, want %+v", tt.goos, tt.uid, got, tt.want)
			}
		})
	}
}

func TestWithOverridesKeepsTerminator(t *testing.T) {
	base := pipe.EndpointsFor("linux", 7)
	got := base.WithOverrides("/x/to", "")
	if got.WritePath != "/x/to" || got.ReadPath != base.ReadPath || got.Terminator != "\n" {
		t.Fatalf("unexpected overrides result %+v", got)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	to := filepath.Join(dir, "to")
	from := filepath.Join(dir, "from")
	ep := pipe.EndpointsFor("linux", 0).WithOverrides(to, from)

	if err := ep.Check(); !errors.Is(err, pipe.ErrPeerUnavailable) {
		t.Fatalf("expected ErrPeerUnavailable with no endpoints, got %v", err)
	}

	if err := os.WriteFile(to, nil, 0o600); err != nil {
		t.Fatalf("create to: %v", err)
	}
	if err := ep.Check(); !errors.Is(err, pipe.ErrPeerUnavailable) {
		t.Fatalf("expected ErrPeerUnavailable with read endpoint missing, got %v", err)
	}

	if err := os.WriteFile(from, nil, 0o600); err != nil {
		t.Fatalf("create from: %v", err)
	}
	if err := ep.Check(); err != nil {
		t.Fatalf("expected both endpoints to pass, got %v", err)
	}
}

func TestOpenMissingEndpoint(t *testing.T) {
	dir := t.TempDir()
	ep := pipe.EndpointsFor("linux", 0).WithOverrides(filepath.Join(dir, "to"), filepath.Join(dir, "from"))
	if _, err := pipe.Open(ep, nil); !errors.Is(err, pipe.ErrPeerUnavailable) {
		t.Fatalf("expected ErrPeerUnavailable, got %v", err)
	}
}
