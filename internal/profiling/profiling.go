// Package profiling wires the CPU profiling knob declared in the teacher's
// go.mod but never exercised there: github.com/pkg/profile, gated behind a
// CLI flag.
package profiling

import "github.com/pkg/profile"

// StartCPUProfile starts a pkg/profile CPU profile rooted at dir and
// returns a stop function the caller defers.
func StartCPUProfile(dir string) func() {
	if dir == "" {
		dir = "."
	}
	stopper := profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook)
	return stopper.Stop
}
