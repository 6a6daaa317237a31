// Package deps reports whether the external programs docimages works with
// can be found on PATH.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// AudacityCommand is the executable name looked up for the Audacity check.
const AudacityCommand = "audacity"

// Requirement defines an external program docimages relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// HarnessRequirements lists the programs the harness looks for. Audacity is
// optional: it may be installed outside PATH, and the pipe check is what
// actually proves it is running.
func HarnessRequirements() []Requirement {
	return []Requirement{
		{
			Name:        "Audacity",
			Command:     AudacityCommand,
			Description: "Hosts mod-script-pipe; must be running before a capture",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		switch path, err := exec.LookPath(cmd); {
		case cmd == "":
			status.Detail = "command not configured"
		case err != nil:
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
		default:
			status.Available = true
			status.Detail = path
		}
		results = append(results, status)
	}
	return results
}
