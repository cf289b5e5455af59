package fontload

// Target describes the capabilities of the platform the plugin runs on.
type Target struct {
	// FolderLoading reports whether the asset store can enumerate a folder.
	// When false, fonts must be listed explicitly.
	FolderLoading bool
}

// Predefined targets.
var (
	NativeTarget     = Target{FolderLoading: true}
	RestrictedTarget = Target{FolderLoading: false}
)

// CurrentTarget returns the target selected at build time.
// Builds for js and wasip1 are restricted; everything else is native.
func CurrentTarget() Target {
	return Target{FolderLoading: folderLoadingSupported}
}
