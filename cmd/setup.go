package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/initializ/enroll/internal/config"
	"github.com/initializ/enroll/internal/logging"
)

// loadConfig reads the config file. The default path may be missing; an
// explicit --config must exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cfgFile != config.DefaultPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the logger for a command. Logs go to --log-file (or
// log.file) when set, otherwise to stderr when toStderr is true, and are
// discarded when not.
func newLogger(cfg *config.Config, toStderr bool) (logging.Logger, io.Closer, error) {
	opts := logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if verbose {
		opts.Level = "debug"
	}

	path := logFile
	if path == "" {
		path = cfg.Log.File
	}
	if path != "" {
		l, closer, err := logging.OpenFile(path, opts)
		if err != nil {
			return nil, nil, err
		}
		return l, closer, nil
	}

	if !toStderr {
		return logging.Nop(), nopCloser{}, nil
	}
	w := stderr
	if w == nil {
		w = os.Stderr
	}
	l, err := logging.New(w, opts)
	if err != nil {
		return nil, nil, err
	}
	return l, nopCloser{}, nil
}
