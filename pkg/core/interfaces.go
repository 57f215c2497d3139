package core

// Logger receives progress output from the renderer. Implementations must be
// safe to call from the goroutine driving a render.
type Logger interface {
	Printf(format string, args ...interface{})
}

// LoggerFunc adapts a printf-style function into a Logger
type LoggerFunc func(format string, args ...interface{})

// Printf calls f
func (f LoggerFunc) Printf(format string, args ...interface{}) {
	f(format, args...)
}

// NopLogger discards everything written to it
var NopLogger Logger = LoggerFunc(func(string, ...interface{}) {})
