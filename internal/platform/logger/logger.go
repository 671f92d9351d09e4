package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Handlers and middleware log through slog
// so request_id and actor fields stay structured.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
