// Package fontload tracks the background loading of a set of fonts and
// exposes a single readiness gate for the rest of an application.
//
// # Quick Start
//
// Create a store and a plugin, start it once, then update it every tick:
//
//	store := fontload.NewFSStore(os.DirFS("assets"))
//	defer store.Close()
//
//	fonts, err := fontload.New(store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := fonts.Startup(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// in the game or UI loop:
//	_ = fonts.Update()
//	if fonts.Ready() {
//	    drawText()
//	}
//
// # Loading Strategies
//
// By default the whole folder (DefaultFolder, "fonts") is loaded with one
// request and its state is reported as the store sees it, Failed included.
//
// With an explicit file list each file is requested on its own:
//
//	paths := fontload.NewAssetPaths(
//	    fontload.WithFolder("ui/fonts"),
//	    fontload.WithFiles("Title.ttf", "Body.otf"),
//	)
//	fonts, err := fontload.New(store, fontload.WithAssetPaths(paths))
//
// A file that fails to load is logged as a warning and not waited for, so
// the plugin becomes ready once every listed file is loaded or failed.
// An empty list is ready on the first update.
//
// # Targets
//
// Builds for js and wasip1 cannot list folders; there the file list is
// mandatory and a missing list loads nothing. Use WithTarget to override
// the build-time choice.
//
// # Configuration
//
// AssetPaths can be read from YAML (LoadAssetPaths) or from the
// FONTLOAD_CONFIG, FONTLOAD_FOLDER and FONTLOAD_FILES environment
// variables (AssetPathsFromEnv):
//
//	folder: ui/fonts
//	files:
//	  - Title.ttf
//	  - Body.otf
//
// # Custom Stores
//
// Implement AssetStore to track fonts loaded by another system, e.g. a
// game engine's asset server. Its methods must not block.
package fontload
