// Package logging wraps charmbracelet/log with mdstyle's defaults.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultLevel is what mdstyle logs at unless --log-level says
// otherwise. Warnings surface configuration fallbacks without drowning
// out check results on stderr.
const DefaultLevel = "warn"

//nolint:gochecknoglobals // level names are fixed at build time
var levelNames = map[string]log.Level{
	"debug":   log.DebugLevel,
	"info":    log.InfoLevel,
	"warn":    log.WarnLevel,
	"warning": log.WarnLevel,
	"error":   log.ErrorLevel,
}

// ParseLevel maps a level name to its log.Level. The second return is
// false for names mdstyle does not recognize.
func ParseLevel(name string) (log.Level, bool) {
	lvl, ok := levelNames[strings.ToLower(name)]
	return lvl, ok
}

//nolint:gochecknoglobals // one process-wide logger keeps CLI wiring simple
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New creates a logger writing to stderr at the given level. Unknown
// level names fall back to DefaultLevel.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	lvl, ok := ParseLevel(level)
	if !ok {
		lvl, _ = ParseLevel(DefaultLevel)
	}
	logger.SetLevel(lvl)

	return logger
}

// Default returns the process-wide logger, creating it at DefaultLevel
// on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(DefaultLevel)
	})
	return defaultLogger
}

// SetLevel adjusts the process-wide logger and reports whether the
// level name was recognized. An unknown name leaves the level alone so
// a typo in --log-level cannot silence warnings.
func SetLevel(level string) bool {
	lvl, ok := ParseLevel(level)
	if ok {
		Default().SetLevel(lvl)
	}
	return ok
}
