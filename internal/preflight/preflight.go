package preflight

import (
	"docimages/internal/config"
	"docimages/internal/deps"
	"docimages/internal/session"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes every preflight check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	ep := session.EndpointsFromConfig(cfg)
	results := []Result{
		CheckPipe("Command pipe", ep.WritePath),
		CheckPipe("Response pipe", ep.ReadPath),
		CheckFile("Mono sample", cfg.Samples.Mono),
		CheckFile("Stereo sample", cfg.Samples.Stereo),
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
	}
	for _, status := range deps.CheckBinaries(deps.HarnessRequirements()) {
		results = append(results, Result{
			Name:     status.Name,
			Passed:   status.Available,
			Optional: status.Optional,
			Detail:   status.Detail,
		})
	}
	return results
}

// Failed reports whether any required check failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Optional {
			return true
		}
	}
	return false
}
