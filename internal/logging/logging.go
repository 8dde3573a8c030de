// Package logging sets up the game log. The terminal is taken over by the
// renderer while playing, so logs go to a file.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init opens file for appending and routes both slog and the standard
// logger to it. The returned file must be closed on shutdown.
func Init(file string, level slog.Level) (*slog.Logger, *os.File, error) {
	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0o755); nil != err {
			return nil, nil, err
		}
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if nil != err {
		return nil, nil, err
	}
	logger := New(f, level)
	log.SetOutput(f)
	return logger, f, nil
}

func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
