// Package fsstore loads fonts from an fs.FS in the background and reports
// per-asset load states.
//
// # Load Model
//
// Every request returns an ID immediately; reading and decoding run on
// goroutines bounded by a weighted semaphore. Requesting the same path
// twice returns the same ID.
//
//	Load(path)        - one font file (.ttf or .otf)
//	LoadFolder(dir)   - every font file under dir, subfolders included
//
// A folder's recursive state covers the folder and all of its fonts:
// Failed if the folder or any font failed, Loading while anything is
// pending, Loaded otherwise.
package fsstore

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/sync/semaphore"
)

// State is the load status of one asset.
type State int

// Asset states.
const (
	NotLoaded State = iota
	Loading
	Loaded
	Failed
)

// ID identifies a load request. Zero is never issued.
type ID uint64

type asset struct {
	path     string
	folder   bool
	state    State
	err      error
	font     *sfnt.Font
	name     string
	children []ID
}

// Store is an asset store backed by an fs.FS.
type Store struct {
	fsys   fs.FS
	sem    *semaphore.Weighted
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex
	next    ID
	assets  map[ID]*asset
	files   map[string]ID
	folders map[string]ID
}

// New creates a Store reading from fsys with at most workers concurrent loads.
// A nil logger discards output.
func New(fsys fs.FS, workers int, logger *slog.Logger) *Store {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		fsys:    fsys,
		sem:     semaphore.NewWeighted(int64(workers)),
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		assets:  make(map[ID]*asset),
		files:   make(map[string]ID),
		folders: make(map[string]ID),
	}
}

// Load requests the font at p and returns its ID.
func (s *Store) Load(p string) ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(p)
}

func (s *Store) loadLocked(p string) ID {
	if id, ok := s.files[p]; ok {
		return id
	}
	id, a := s.newAssetLocked(p, false)
	s.files[p] = id

	if err := ValidateFontPath(p); err != nil {
		a.state = Failed
		a.err = err
		return id
	}

	s.wg.Add(1)
	go s.loadFile(id, p)
	return id
}

// LoadFolder requests every font under dir, at any depth, and returns the
// folder's ID.
func (s *Store) LoadFolder(dir string) ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.folders[dir]; ok {
		return id
	}
	id, a := s.newAssetLocked(dir, true)
	s.folders[dir] = id

	if !fs.ValidPath(dir) {
		a.state = Failed
		a.err = fmt.Errorf("%w: %q", ErrInvalidPath, dir)
		return id
	}

	s.wg.Add(1)
	go s.loadFolder(id, dir)
	return id
}

func (s *Store) newAssetLocked(p string, folder bool) (ID, *asset) {
	s.next++
	a := &asset{path: p, folder: folder, state: Loading}
	s.assets[s.next] = a
	return s.next, a
}

func (s *Store) loadFile(id ID, p string) {
	defer s.wg.Done()

	if err := s.sem.Acquire(s.ctx, 1); err != nil {
		s.finish(id, nil, "", err)
		return
	}
	defer s.sem.Release(1)

	f, name, err := ParseFromFS(s.fsys, p)
	s.finish(id, f, name, err)
}

func (s *Store) loadFolder(id ID, dir string) {
	defer s.wg.Done()

	var files []string
	err := fs.WalkDir(s.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && HasFontExtension(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		s.finish(id, nil, "", fmt.Errorf("%w: %v", ErrFolderRead, err))
		return
	}

	s.mu.Lock()
	children := make([]ID, 0, len(files))
	for _, p := range files {
		children = append(children, s.loadLocked(p))
	}
	a := s.assets[id]
	a.children = children
	a.state = Loaded
	s.mu.Unlock()

	s.logger.Debug("font folder enumerated", "folder", dir, "files", len(children))
}

func (s *Store) finish(id ID, f *sfnt.Font, name string, err error) {
	s.mu.Lock()
	a := s.assets[id]
	if err != nil {
		a.state = Failed
		a.err = err
	} else {
		a.state = Loaded
		a.font = f
		a.name = name
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Debug("font load failed", "path", a.path, "error", err)
		return
	}
	s.logger.Debug("font loaded", "path", a.path, "name", name)
}

// State returns the state of the asset itself, ignoring folder contents.
func (s *Store) State(id ID) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]
	if !ok {
		return NotLoaded
	}
	return a.state
}

// RecursiveState returns the state of the asset and everything it contains.
func (s *Store) RecursiveState(id ID) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recursiveStateLocked(id)
}

func (s *Store) recursiveStateLocked(id ID) State {
	a, ok := s.assets[id]
	if !ok {
		return NotLoaded
	}
	if a.state != Loaded {
		return a.state
	}

	state := Loaded
	for _, child := range a.children {
		switch s.recursiveStateLocked(child) {
		case Failed:
			return Failed
		case Loading, NotLoaded:
			state = Loading
		}
	}
	return state
}

// LoadedWithDependencies reports whether RecursiveState is Loaded.
func (s *Store) LoadedWithDependencies(id ID) bool {
	return s.RecursiveState(id) == Loaded
}

// Font returns the decoded font and its name.
// Returns ErrNotFound for unknown IDs and folders, ErrNotReady while loading,
// and the load error if loading failed.
func (s *Store) Font(id ID) (*sfnt.Font, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]
	if !ok || a.folder {
		return nil, "", fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	switch a.state {
	case Loaded:
		return a.font, a.name, nil
	case Failed:
		return nil, "", a.err
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrNotReady, a.path)
	}
}

// Path returns the path an ID was requested with.
func (s *Store) Path(id ID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]
	if !ok {
		return "", false
	}
	return a.path, true
}

// Children returns the font IDs found under a folder, in lexical path order.
// It is empty until the folder has been enumerated.
func (s *Store) Children(id ID) []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]
	if !ok {
		return nil
	}
	return append([]ID(nil), a.children...)
}

// Wait blocks until every load issued so far has finished.
func (s *Store) Wait() {
	s.wg.Wait()
}

// Close cancels loads still waiting for a worker and waits for the rest.
// Cancelled loads end up Failed.
func (s *Store) Close() error {
	s.cancel()
	s.wg.Wait()
	return nil
}
