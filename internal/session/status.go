package session

import "strings"

// Status classifies the outcome line Audacity appends to each response.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusUnknown Status = "unknown"
)

const statusPrefix = "BatchCommand finished:"

// ParseStatus inspects the last non-empty line of a response.
func ParseStatus(response string) Status {
	lines := strings.Split(strings.TrimRight(response, "\r\n"), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	rest, ok := strings.CutPrefix(last, statusPrefix)
	if !ok {
		return StatusUnknown
	}
	switch strings.TrimSpace(rest) {
	case "OK":
		return StatusOK
	case "Failed!":
		return StatusFailed
	default:
		return StatusUnknown
	}
}
