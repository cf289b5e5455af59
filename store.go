package fontload

// Handle identifies one load operation issued to an AssetStore.
// Handles are owned by the store; this package only keeps them to
// correlate later state queries.
type Handle uint64

// AssetStore defines the contract with the content store that performs
// the actual loading and decoding of fonts.
// Implementations may load from a directory, an embedded filesystem,
// a network cache, etc. Every method must return without blocking:
// loads progress in the background and are observed through the query methods.
//
// The library provides NewFSStore() for fs.FS based loading.
type AssetStore interface {
	// LoadFolder requests a bulk load of every font under path and
	// returns one handle covering the folder and all of its contents.
	LoadFolder(path string) Handle

	// Load requests a load of the single file at path.
	Load(path string) Handle

	// RecursiveDependencyLoadState returns the state of the asset
	// together with everything it transitively depends on.
	RecursiveDependencyLoadState(h Handle) LoadState

	// IsLoadedWithDependencies reports whether the asset and all of its
	// dependencies finished loading successfully.
	IsLoadedWithDependencies(h Handle) bool
}
