package fontload

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/alnah/go-fontload/internal/fsstore"
	"golang.org/x/image/font/sfnt"
)

// FSStore is an AssetStore that reads and decodes fonts from an fs.FS
// (os.DirFS, embed.FS, ...) on background goroutines.
//
// Paths use forward slashes and are relative to the root of the fs.FS.
// Folder loads pick up the .ttf and .otf files under the folder, subfolders
// included.
type FSStore struct {
	store *fsstore.Store
}

// StoreOption configures an FSStore.
type StoreOption func(*storeConfig)

type storeConfig struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets how many fonts are decoded concurrently.
// Zero or less uses ResolveWorkers(0).
func WithWorkers(n int) StoreOption {
	return func(c *storeConfig) {
		c.workers = n
	}
}

// WithStoreLogger sets the store's logger. Defaults to no output.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		c.logger = l
	}
}

// NewFSStore creates an FSStore reading from fsys.
func NewFSStore(fsys fs.FS, opts ...StoreOption) *FSStore {
	var cfg storeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FSStore{
		store: fsstore.New(fsys, ResolveWorkers(cfg.workers), loggerOrNop(cfg.logger)),
	}
}

// LoadFolder implements AssetStore.
func (s *FSStore) LoadFolder(path string) Handle {
	return Handle(s.store.LoadFolder(path))
}

// Load implements AssetStore.
func (s *FSStore) Load(path string) Handle {
	return Handle(s.store.Load(path))
}

// RecursiveDependencyLoadState implements AssetStore.
func (s *FSStore) RecursiveDependencyLoadState(h Handle) LoadState {
	return convertState(s.store.RecursiveState(fsstore.ID(h)))
}

// IsLoadedWithDependencies implements AssetStore.
func (s *FSStore) IsLoadedWithDependencies(h Handle) bool {
	return s.store.LoadedWithDependencies(fsstore.ID(h))
}

// Font returns the decoded font for a file handle and its name.
// Returns ErrFontNotLoaded while loading, for folder handles, and for
// unknown handles; a failed load returns ErrInvalidAssetPath or the
// underlying read/parse error.
func (s *FSStore) Font(h Handle) (*sfnt.Font, string, error) {
	f, name, err := s.store.Font(fsstore.ID(h))
	if err != nil {
		return nil, "", convertStoreError(err)
	}
	return f, name, nil
}

// Files returns the file handles of a folder handle, with their paths,
// once the folder has been listed. For a file handle it returns nil.
func (s *FSStore) Files(folder Handle) FileHandles {
	ids := s.store.Children(fsstore.ID(folder))
	if len(ids) == 0 {
		return nil
	}
	dir, _ := s.store.Path(fsstore.ID(folder))
	out := make(FileHandles, 0, len(ids))
	for _, id := range ids {
		p, _ := s.store.Path(id)
		rel := strings.TrimPrefix(p, dir+"/")
		out = append(out, FileHandle{Entry: rel, Path: p, Handle: Handle(id)})
	}
	return out
}

// Wait blocks until every load issued so far has finished.
func (s *FSStore) Wait() {
	s.store.Wait()
}

// Close cancels loads still waiting for a worker and waits for running ones.
func (s *FSStore) Close() error {
	return s.store.Close()
}

func convertState(st fsstore.State) LoadState {
	switch st {
	case fsstore.Loading:
		return Loading
	case fsstore.Loaded:
		return Loaded
	case fsstore.Failed:
		return Failed
	default:
		return NotLoaded
	}
}

// convertStoreError maps internal store errors to public errors.
func convertStoreError(err error) error {
	switch {
	case errors.Is(err, fsstore.ErrNotReady), errors.Is(err, fsstore.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrFontNotLoaded, err)
	case errors.Is(err, fsstore.ErrInvalidPath), errors.Is(err, fsstore.ErrUnsupportedFormat):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// Compile-time interface check.
var _ AssetStore = (*FSStore)(nil)
