package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TrackPanel", "TrackPanel"},
		{"  Label Track  ", "Label Track"},
		{`Say "hi"`, "Say hi"},
		{"../escape", "-escape"},
		{`a\b:c*d`, "a-b-c-d"},
		{"tab\tname", "tabname"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"tracks":        "Tracks",
		"after_effects": "After Effects",
		"spectro-view":  "Spectro View",
		"  ":            "",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}
