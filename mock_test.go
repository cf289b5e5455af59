package fontload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Mock implementations for testing.

type mockStore struct {
	next          Handle
	folderCalls   []string
	loadCalls     []string
	handles       map[string]Handle
	states        map[Handle]LoadState
	stateQueries  int
	loadedQueries int
}

func newMockStore() *mockStore {
	return &mockStore{
		handles: make(map[string]Handle),
		states:  make(map[Handle]LoadState),
	}
}

func (m *mockStore) issue(path string) Handle {
	m.next++
	m.handles[path] = m.next
	return m.next
}

func (m *mockStore) LoadFolder(path string) Handle {
	m.folderCalls = append(m.folderCalls, path)
	return m.issue(path)
}

func (m *mockStore) Load(path string) Handle {
	m.loadCalls = append(m.loadCalls, path)
	return m.issue(path)
}

func (m *mockStore) RecursiveDependencyLoadState(h Handle) LoadState {
	m.stateQueries++
	return m.states[h]
}

func (m *mockStore) IsLoadedWithDependencies(h Handle) bool {
	m.loadedQueries++
	return m.states[h] == Loaded
}

// set changes the state reported for the handle issued for path.
func (m *mockStore) set(path string, s LoadState) {
	h, ok := m.handles[path]
	if !ok {
		panic("mockStore: no handle issued for " + path)
	}
	m.states[h] = s
}

func (m *mockStore) queries() int {
	return m.stateQueries + m.loadedQueries
}

// recordHandler keeps every log record for inspection.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

// lines renders records at level as "message key=value ...".
func (h *recordHandler) lines(level slog.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []string
	for _, r := range h.records {
		if r.Level != level {
			continue
		}
		var b strings.Builder
		b.WriteString(r.Message)
		r.Attrs(func(a slog.Attr) bool {
			fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
			return true
		})
		out = append(out, b.String())
	}
	return out
}

func newRecordLogger() (*slog.Logger, *recordHandler) {
	h := &recordHandler{}
	return slog.New(h), h
}
