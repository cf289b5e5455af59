package fontload

import "log/slog"

// newNopLogger creates a logger that silently discards all output.
// slog.DiscardHandler reports every level disabled, so callers skip
// formatting entirely.
func newNopLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// loggerOrNop returns l, or a silent logger when l is nil.
func loggerOrNop(l *slog.Logger) *slog.Logger {
	if l == nil {
		return newNopLogger()
	}
	return l
}
