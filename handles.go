package fontload

// HandleSet is the outcome of dispatching load requests: either a single
// FolderHandle or a FileHandles list, never both.
// The set of implementations is closed to this package.
type HandleSet interface {
	handleSet()
}

// FolderHandle is produced by the bulk folder strategy.
type FolderHandle struct {
	Path   string // folder the load was issued against
	Handle Handle
}

// FileHandle pairs one per-file load request with its path.
type FileHandle struct {
	Entry  string // list entry as configured, e.g. "./a.ttf"
	Path   string // full path passed to the store, e.g. "fonts/a.ttf"
	Handle Handle
}

// FileHandles is produced by the explicit list strategy, in list order.
// An empty list is valid and means nothing was requested.
type FileHandles []FileHandle

func (FolderHandle) handleSet() {}
func (FileHandles) handleSet()  {}

// Handles returns the raw store handles in list order.
func (f FileHandles) Handles() []Handle {
	out := make([]Handle, len(f))
	for i, fh := range f {
		out[i] = fh.Handle
	}
	return out
}

// Compile-time interface checks.
var (
	_ HandleSet = FolderHandle{}
	_ HandleSet = FileHandles(nil)
)
