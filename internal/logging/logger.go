// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide logger. The TUI owns the terminal
// while a prompt is open, so logs should be sent to a file via SetOutputFile
// whenever the TUI is used.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than reaching for L directly.
var L = New(os.Stderr)

// New creates a logger writing to w with timestamps enabled.
func New(w io.Writer) *clog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Prefix:          "connprompt",
	})
}

// SetLevel sets the level of L from its name ("debug", "info", "warn", "error").
func SetLevel(level string) error {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetOutputFile redirects L to the file at path, creating parent directories.
// The returned closer must be called when logging is finished.
func SetOutputFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	L.SetOutput(f)
	return f, nil
}

// Discard silences L, used while the TUI runs without a log file.
func Discard() {
	L.SetOutput(io.Discard)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
