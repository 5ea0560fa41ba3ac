package tui

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls where the runner's logs go.
type LogOptions struct {
	Console io.Writer // Nil means no console output
	File    string    // Rotating log file; empty means none
	Prefix  string
	Debug   bool
}

// NewLogger builds a logger writing to the console, a rotating file, both,
// or nowhere. The returned closer releases the file and is never nil.
func NewLogger(opts LogOptions) (*log.Logger, io.Closer, error) {
	var sinks []io.Writer
	closer := io.Closer(nopCloser{})

	if opts.Console != nil {
		sinks = append(sinks, opts.Console)
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		sinks = append(sinks, lj)
		closer = lj
	}

	var w io.Writer
	switch len(sinks) {
	case 0:
		w = io.Discard
	case 1:
		w = sinks[0]
	default:
		w = io.MultiWriter(sinks...)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	})
	if opts.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
