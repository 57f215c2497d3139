package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
)

// Console levels
const (
	levelInfo    = "info"
	levelWarning = "warning"
	levelError   = "error"
)

// ConsoleMessage is one line of render output forwarded to the browser
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger is a core.Logger that mirrors render output to stdout and to a
// console channel drained by the SSE handler
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger for one render. A nil channel logs to stdout only.
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{renderID: renderID, consoleChan: consoleChan}
}

// Printf never blocks: when the channel is full the console copy is dropped
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Printf("[%s] %s", wl.renderID, message)

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     consoleLevel(message),
	}:
	default:
	}
}

// consoleLevel classifies a message by its leading "Error" or "Warning" word
func consoleLevel(message string) string {
	trimmed := strings.ToLower(strings.TrimSpace(message))
	switch {
	case strings.HasPrefix(trimmed, "error"):
		return levelError
	case strings.HasPrefix(trimmed, "warning"):
		return levelWarning
	default:
		return levelInfo
	}
}
