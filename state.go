package fontload

import (
	"fmt"
	"sync/atomic"
)

// LoadState is the load status of a font asset, or of every font
// tracked by a Plugin taken together.
type LoadState int32

// Load states, in the order a successful load moves through them.
const (
	NotLoaded LoadState = iota
	Loading
	Loaded
	Failed
)

// String returns the lowercase name of the state.
func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "not_loaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("LoadState(%d)", int32(s))
	}
}

// Terminal reports whether no further transition is expected.
// Loaded and Failed are terminal.
func (s LoadState) Terminal() bool {
	return s == Loaded || s == Failed
}

// StateCell holds the aggregate load state shared between the aggregator
// that writes it and any number of readers. The zero value reads NotLoaded.
//
// Only the aggregator writes the cell; reads are safe from any goroutine.
type StateCell struct {
	v atomic.Int32
}

// Load returns the current state.
func (c *StateCell) Load() LoadState {
	return LoadState(c.v.Load())
}

// Store replaces the current state and returns the previous one.
func (c *StateCell) Store(s LoadState) LoadState {
	return LoadState(c.v.Swap(int32(s)))
}
