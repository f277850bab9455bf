// Package logging provides the named loggers used across tiny.
//
// Loggers implement dragonboat's logger.ILogger so they can be handed to, or
// replaced by, any component that already speaks that interface. Output goes
// to stderr as "LEVEL | name | message". The default level is WARNING so a
// library consumer sees nothing unless something is wrong.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/lni/dragonboat/v4/logger"
)

// Logger is the logging interface accepted throughout tiny.
type Logger = logger.ILogger

// DefaultLevel is the level of newly created loggers.
const DefaultLevel = logger.WARNING

// --------------------------------------------------------------------------
// Named logger (implements dragonboat's logger.ILogger)
// --------------------------------------------------------------------------

type tinyLogger struct {
	name   string
	mu     sync.RWMutex
	level  logger.LogLevel
	logger *log.Logger
}

var _ logger.ILogger = (*tinyLogger)(nil)

func (l *tinyLogger) SetLevel(level logger.LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *tinyLogger) enabled(level logger.LogLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.level >= level
}

func (l *tinyLogger) Debugf(format string, args ...any) {
	if l.enabled(logger.DEBUG) {
		l.log("DEBUG", format, args...)
	}
}

func (l *tinyLogger) Infof(format string, args ...any) {
	if l.enabled(logger.INFO) {
		l.log("INFO", format, args...)
	}
}

func (l *tinyLogger) Warningf(format string, args ...any) {
	if l.enabled(logger.WARNING) {
		l.log("WARN", format, args...)
	}
}

func (l *tinyLogger) Errorf(format string, args ...any) {
	if l.enabled(logger.ERROR) {
		l.log("ERROR", format, args...)
	}
}

func (l *tinyLogger) Panicf(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if l.enabled(logger.CRITICAL) {
		l.log("PANIC", "%s", message)
	}
	panic(message)
}

func (l *tinyLogger) log(levelStr string, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-15s | %s", levelStr, l.name, message)
}

// --------------------------------------------------------------------------
// Registry
// --------------------------------------------------------------------------

var (
	registryMu sync.Mutex
	registry   = map[string]*tinyLogger{}
	output     io.Writer = os.Stderr
	level                = DefaultLevel
)

// GetLogger returns the logger registered under name, creating it on first
// use with the current global level.
func GetLogger(name string) Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	if l, ok := registry[name]; ok {
		return l
	}

	l := &tinyLogger{
		name:   name,
		level:  level,
		logger: log.New(output, "", log.Ldate|log.Ltime),
	}
	registry[name] = l

	return l
}

// SetLevel parses levelName and applies it to every existing and future logger.
func SetLevel(levelName string) error {
	parsed, err := ParseLevel(levelName)
	if err != nil {
		return err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	level = parsed
	for _, l := range registry {
		l.SetLevel(parsed)
	}

	return nil
}

// SetOutput redirects every existing and future logger to w.
func SetOutput(w io.Writer) {
	registryMu.Lock()
	defer registryMu.Unlock()

	output = w
	for _, l := range registry {
		l.logger.SetOutput(w)
	}
}

// ParseLevel converts a level name to a logger.LogLevel.
func ParseLevel(levelName string) (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(levelName)) {
	case "debug":
		return logger.DEBUG, nil
	case "info":
		return logger.INFO, nil
	case "warning", "warn":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	case "critical":
		return logger.CRITICAL, nil
	default:
		return DefaultLevel, fmt.Errorf("invalid log level: %q, must be one of debug, info, warn, error, critical", levelName)
	}
}

// Discard is a logger that drops everything. Panicf still panics.
var Discard Logger = &tinyLogger{
	name:   "discard",
	level:  logger.CRITICAL,
	logger: log.New(io.Discard, "", 0),
}
