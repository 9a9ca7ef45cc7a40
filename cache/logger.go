package cache

// Logger is a minimal structured logging interface.
// keyvals alternate keys and values, e.g. "slot", 3, "worth", 0.25.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// NoopLogger discards everything. Used when Options.Logger is nil.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...any) {}
func (NoopLogger) Info(string, ...any)  {}
func (NoopLogger) Warn(string, ...any)  {}
func (NoopLogger) Error(string, ...any) {}

var _ Logger = NoopLogger{}
