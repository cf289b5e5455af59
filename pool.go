package fontload

import "runtime"

// Worker sizing constants for background font loading.
const (
	// MinWorkers ensures at least one load runs at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent decodes; font files are read whole into memory.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for the host's own tick loop.
	cpuDivisor = 2
)

// ResolveWorkers determines how many fonts an FSStore decodes at once.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
