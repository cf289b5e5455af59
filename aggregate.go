package fontload

import "log/slog"

// Aggregator combines the store's per-handle load states into the single
// state published in a StateCell.
//
// Tick always polls the store. Callers stop ticking once the state is
// Loaded; Plugin.Update does this.
type Aggregator struct {
	store   AssetStore
	handles HandleSet
	state   *StateCell
	logger  *slog.Logger
	warned  map[int]struct{}
}

func newAggregator(store AssetStore, handles HandleSet, state *StateCell, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		store:   store,
		handles: handles,
		state:   state,
		logger:  logger,
		warned:  make(map[int]struct{}),
	}
}

// Tick polls the store once and publishes the aggregate state.
//
// For a folder the store's recursive state is published as is, Failed
// included. For a file list the aggregate is Loaded once every file is
// either loaded or failed, and NotLoaded before that: a file that failed
// is logged and no longer waited for.
func (a *Aggregator) Tick() LoadState {
	var next LoadState
	switch hs := a.handles.(type) {
	case FolderHandle:
		next = a.store.RecursiveDependencyLoadState(hs.Handle)
	case FileHandles:
		next = a.aggregateFiles(hs)
	}

	if prev := a.state.Store(next); prev != next {
		a.logger.Info("font load state changed", "from", prev.String(), "to", next.String())
	}
	return next
}

func (a *Aggregator) aggregateFiles(files FileHandles) LoadState {
	done := true
	for i, f := range files {
		if a.store.RecursiveDependencyLoadState(f.Handle) == Failed {
			a.warnFailed(i, f)
			continue
		}
		if !a.store.IsLoadedWithDependencies(f.Handle) {
			done = false
		}
	}
	if done {
		return Loaded
	}
	return NotLoaded
}

// warnFailed logs a failed list entry once. Entries are keyed by position,
// so a file listed twice is reported for each entry.
func (a *Aggregator) warnFailed(i int, f FileHandle) {
	if _, ok := a.warned[i]; ok {
		return
	}
	a.warned[i] = struct{}{}
	a.logger.Warn("font asset failed to load, missing file or wrong format",
		"path", f.Path, "entry", f.Entry)
}
