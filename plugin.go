package fontload

import (
	"context"
	"log/slog"
	"time"
)

// Plugin tracks the loading of a set of fonts from an AssetStore.
//
// The host calls Startup once after configuration, then Update once per
// tick. Ready (or the predicate returned by Condition) turns true when
// every font is available.
//
// A Plugin is not safe for concurrent Startup/Update calls; Ready, State
// and the Condition predicate may be read from any goroutine.
type Plugin struct {
	store   AssetStore
	paths   *AssetPaths
	target  Target
	logger  *slog.Logger
	state   StateCell
	handles HandleSet
	agg     *Aggregator
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithAssetPaths sets where fonts are loaded from.
// Defaults to NewAssetPaths().
func WithAssetPaths(paths *AssetPaths) Option {
	return func(p *Plugin) {
		if paths != nil {
			p.paths = paths
		}
	}
}

// WithTarget overrides the build-time target.
func WithTarget(t Target) Option {
	return func(p *Plugin) {
		p.target = t
	}
}

// WithLogger sets the logger. By default the plugin produces no log output.
//
// Levels used:
//   - [slog.LevelDebug]: dispatched requests
//   - [slog.LevelInfo]: aggregate state changes, empty file list
//   - [slog.LevelWarn]: failed font files, missing file list on restricted targets
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) {
		p.logger = loggerOrNop(l)
	}
}

// New creates a Plugin loading fonts from store.
// Returns ErrNilStore if store is nil.
func New(store AssetStore, opts ...Option) (*Plugin, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	p := &Plugin{
		store:  store,
		paths:  NewAssetPaths(),
		target: CurrentTarget(),
		logger: newNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Startup issues the load requests. It must be called exactly once,
// before the first Update; later calls return ErrAlreadyStarted.
func (p *Plugin) Startup() error {
	if p.handles != nil {
		return ErrAlreadyStarted
	}
	p.handles = dispatch(p.store, p.paths, p.target, p.logger)
	p.agg = newAggregator(p.store, p.handles, &p.state, p.logger)
	return nil
}

// Update runs one aggregation tick. Once fonts are Loaded it returns
// immediately without querying the store.
// Returns ErrNotStarted if Startup has not been called.
func (p *Plugin) Update() error {
	if p.agg == nil {
		return ErrNotStarted
	}
	if p.Ready() {
		return nil
	}
	p.agg.Tick()
	return nil
}

// Ready reports whether every font is loaded.
func (p *Plugin) Ready() bool {
	return p.state.Load() == Loaded
}

// Condition returns Ready as a standalone predicate for host schedulers.
func (p *Plugin) Condition() func() bool {
	return Gate(&p.state)
}

// State returns the current aggregate state.
func (p *Plugin) State() LoadState {
	return p.state.Load()
}

// StateCell returns the cell the aggregate state is published in.
// It lives as long as the Plugin.
func (p *Plugin) StateCell() *StateCell {
	return &p.state
}

// Handles returns the handles issued by Startup, or nil before Startup.
// Hosts use them to fetch fonts from the store once Ready.
func (p *Plugin) Handles() HandleSet {
	return p.handles
}

// Poll drives Update every interval until the state is terminal or ctx
// is done, and returns the last state. It starts the plugin if needed.
// Panics if interval <= 0 (programmer error, similar to time.NewTicker).
func (p *Plugin) Poll(ctx context.Context, interval time.Duration) (LoadState, error) {
	if interval <= 0 {
		panic("fontload: Poll interval must be positive")
	}
	if p.handles == nil {
		if err := p.Startup(); err != nil {
			return p.State(), err
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := p.Update(); err != nil {
			return p.State(), err
		}
		if s := p.State(); s.Terminal() {
			return s, nil
		}

		select {
		case <-ctx.Done():
			return p.State(), ctx.Err()
		case <-ticker.C:
		}
	}
}
