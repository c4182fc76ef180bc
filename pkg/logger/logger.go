package logger

// Backend is a destination for log records. The package-level functions fan
// every record out to all registered backends.
type Backend interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
	Fatal(message string, keyvals ...any)
}

var backends []Backend

// Init registers the backends used by the package-level logging functions.
// Logging before Init is a no-op.
func Init(b ...Backend) {
	backends = b
}

// Debug writes a record at DEBUG level to every registered backend.
func Debug(message string, keyvals ...any) {
	for _, b := range backends {
		b.Debug(message, keyvals...)
	}
}

// Info writes a record at INFO level to every registered backend.
func Info(message string, keyvals ...any) {
	for _, b := range backends {
		b.Info(message, keyvals...)
	}
}

// Warn writes a record at WARN level to every registered backend.
func Warn(message string, keyvals ...any) {
	for _, b := range backends {
		b.Warn(message, keyvals...)
	}
}

// Error writes a record at ERROR level to every registered backend.
func Error(message string, keyvals ...any) {
	for _, b := range backends {
		b.Error(message, keyvals...)
	}
}

// Fatal writes a record at FATAL level to every registered backend. The
// backend is expected to terminate the process.
func Fatal(message string, keyvals ...any) {
	for _, b := range backends {
		b.Fatal(message, keyvals...)
	}
}
