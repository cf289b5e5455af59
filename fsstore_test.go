package fontload

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func fontFS() fstest.MapFS {
	return fstest.MapFS{
		"fonts/Go-Regular.ttf": {Data: goregular.TTF},
		"fonts/Go-Bold.ttf":    {Data: gobold.TTF},
		"fonts/broken.ttf":     {Data: []byte("not a font")},
		"good/Go-Regular.ttf":  {Data: goregular.TTF},
		"nested/latin/a.ttf":   {Data: goregular.TTF},
		"nested/bold/x/b.ttf":  {Data: gobold.TTF},
	}
}

func newTestFSStore(t *testing.T) *FSStore {
	t.Helper()
	s := NewFSStore(fontFS(), WithWorkers(2))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFSStore_Plugin_FileList(t *testing.T) {
	t.Parallel()

	logger, rec := newRecordLogger()
	store := newTestFSStore(t)
	p := newTestPlugin(t, store,
		WithAssetPaths(NewAssetPaths(WithFiles("Go-Regular.ttf", "missing.ttf", "broken.ttf"))),
		WithLogger(logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	got, err := p.Poll(ctx, time.Millisecond)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if got != Loaded {
		t.Fatalf("Poll() = %v, want Loaded", got)
	}

	files, ok := p.Handles().(FileHandles)
	if !ok || len(files) != 3 {
		t.Fatalf("Handles() = %#v, want 3 file handles", p.Handles())
	}
	if _, name, err := store.Font(files[0].Handle); err != nil || name == "" {
		t.Errorf("Font(%s) = %q, %v, want a named font", files[0].Path, name, err)
	}
	if _, _, err := store.Font(files[1].Handle); err == nil {
		t.Errorf("Font(%s) error = nil, want read error", files[1].Path)
	}

	if warns := rec.lines(slog.LevelWarn); len(warns) != 2 {
		t.Errorf("got %d warnings, want 2 (missing and broken): %q", len(warns), warns)
	}
}

func TestFSStore_Plugin_Folder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		folder string
		want   LoadState
		fonts  int
	}{
		{"good folder loads", "good", Loaded, 1},
		{"fonts in subfolders load", "nested", Loaded, 2},
		{"trailing slash folder loads", "good/", Loaded, 1},
		{"broken font fails folder", "fonts", Failed, 3},
		{"missing folder fails", "missing", Failed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newTestFSStore(t)
			p := newTestPlugin(t, store, WithAssetPaths(NewAssetPaths(WithFolder(tt.folder))))

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			got, err := p.Poll(ctx, time.Millisecond)
			if err != nil {
				t.Fatalf("Poll() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Poll() = %v, want %v", got, tt.want)
			}

			folder, ok := p.Handles().(FolderHandle)
			if !ok {
				t.Fatalf("Handles() = %T, want FolderHandle", p.Handles())
			}
			if n := len(store.Files(folder.Handle)); n != tt.fonts {
				t.Errorf("len(Files()) = %d, want %d", n, tt.fonts)
			}
		})
	}
}

func TestFSStore_Plugin_DuplicateEntries(t *testing.T) {
	t.Parallel()

	logger, rec := newRecordLogger()
	store := newTestFSStore(t)
	p := newTestPlugin(t, store,
		WithAssetPaths(NewAssetPaths(WithFiles("missing.ttf", "./missing.ttf"))),
		WithLogger(logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if got, err := p.Poll(ctx, time.Millisecond); err != nil || got != Loaded {
		t.Fatalf("Poll() = %v, %v, want Loaded", got, err)
	}

	files := p.Handles().(FileHandles)
	if files[0].Handle != files[1].Handle {
		t.Errorf("handles = %d, %d, want the store to reuse one", files[0].Handle, files[1].Handle)
	}
	if warns := rec.lines(slog.LevelWarn); len(warns) != 2 {
		t.Errorf("got %d warnings, want 2: %q", len(warns), warns)
	}
}

func TestFSStore_Files_Entries(t *testing.T) {
	t.Parallel()

	store := newTestFSStore(t)
	folder := store.LoadFolder("nested")
	store.Wait()

	var got []string
	for _, f := range store.Files(folder) {
		got = append(got, f.Entry)
	}
	if diff := cmp.Diff([]string{"bold/x/b.ttf", "latin/a.ttf"}, got); diff != "" {
		t.Errorf("Files() entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFSStore_FontErrors(t *testing.T) {
	t.Parallel()

	store := newTestFSStore(t)
	bad := store.Load("fonts/readme.txt")
	folder := store.LoadFolder("good")
	store.Wait()

	if _, _, err := store.Font(bad); !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("Font(readme.txt) error = %v, want ErrInvalidAssetPath", err)
	}
	if _, _, err := store.Font(folder); !errors.Is(err, ErrFontNotLoaded) {
		t.Errorf("Font(folder) error = %v, want ErrFontNotLoaded", err)
	}
	if _, _, err := store.Font(Handle(999)); !errors.Is(err, ErrFontNotLoaded) {
		t.Errorf("Font(unknown) error = %v, want ErrFontNotLoaded", err)
	}
	if got := store.RecursiveDependencyLoadState(Handle(999)); got != NotLoaded {
		t.Errorf("RecursiveDependencyLoadState(unknown) = %v, want NotLoaded", got)
	}
}
