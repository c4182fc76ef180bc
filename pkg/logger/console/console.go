package console

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger writes log records to stderr through charmbracelet/log.
type Logger struct {
	backend *log.Logger
}

// Options configures a console Logger.
type Options struct {
	// Debug lowers the level threshold from INFO to DEBUG.
	Debug bool
}

// New creates a console logger that writes to stderr.
func New(opts Options) *Logger {
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}
	return &Logger{
		backend: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           level,
		}),
	}
}

// Debug writes a record at DEBUG level.
func (l *Logger) Debug(message string, keyvals ...any) {
	l.backend.Debug(message, keyvals...)
}

// Info writes a record at INFO level.
func (l *Logger) Info(message string, keyvals ...any) {
	l.backend.Info(message, keyvals...)
}

// Warn writes a record at WARN level.
func (l *Logger) Warn(message string, keyvals ...any) {
	l.backend.Warn(message, keyvals...)
}

// Error writes a record at ERROR level.
func (l *Logger) Error(message string, keyvals ...any) {
	l.backend.Error(message, keyvals...)
}

// Fatal writes a record at FATAL level and terminates the process.
func (l *Logger) Fatal(message string, keyvals ...any) {
	l.backend.Fatal(message, keyvals...)
}
