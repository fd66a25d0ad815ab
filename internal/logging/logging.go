// Package logging routes structured logs to a rotating file
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/quiver/internal/osutil"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Options control the logger returned by New.
type Options struct {
	Path  string
	Debug bool
}

// New returns a JSON logger writing to a size-rotated file at opts.Path
// along with the writer backing it, which the caller must close.
func New(opts Options) (*slog.Logger, io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission); err != nil {
		return nil, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	return slog.New(Handler(w, opts.Debug)), w, nil
}

// Handler returns the JSON handler used for every quiver log.
func Handler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// Setup installs the file logger as the process-wide default.
func Setup(opts Options) (io.Closer, error) {
	l, w, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)

	return w, nil
}
