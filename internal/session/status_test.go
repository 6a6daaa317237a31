package session

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		response string
		want     Status
	}{
		{"BatchCommand finished: OK\n", StatusOK},
		{"Some output\nBatchCommand finished: OK\n", StatusOK},
		{"Error text\nBatchCommand finished: Failed!\n", StatusFailed},
		{"BatchCommand finished: Failed!\r\n", StatusFailed},
		{"OK\n", StatusUnknown},
		{"", StatusUnknown},
		{"BatchCommand finished: Maybe\n", StatusUnknown},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.response); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.response, got, tt.want)
		}
	}
}
