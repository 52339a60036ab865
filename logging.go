package uber

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a minimal printf-style logging interface.
// It's compatible with the standard library *log.Logger.
type Logger interface {
	// Printf logs a formatted message.
	Printf(format string, v ...any)
}

// StructuredLogger provides leveled, structured logging for the SDK.
// It is compatible with Go's slog package via NewSlogAdapter and with
// zerolog via NewZerologAdapter.
type StructuredLogger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}

// printfLoggerWrapper wraps a printf-style logger to implement StructuredLogger.
type printfLoggerWrapper struct {
	logger Logger
}

// WrapPrintfLogger wraps a printf-style Logger (like *log.Logger) to
// implement StructuredLogger. All messages are logged at the same level
// with formatted key-value pairs appended.
func WrapPrintfLogger(l Logger) StructuredLogger {
	return &printfLoggerWrapper{logger: l}
}

func (w *printfLoggerWrapper) Debug(msg string, args ...any) {
	w.logger.Printf("[DEBUG] " + msg + formatArgs(args))
}

func (w *printfLoggerWrapper) Info(msg string, args ...any) {
	w.logger.Printf("[INFO] " + msg + formatArgs(args))
}

func (w *printfLoggerWrapper) Warn(msg string, args ...any) {
	w.logger.Printf("[WARN] " + msg + formatArgs(args))
}

func (w *printfLoggerWrapper) Error(msg string, args ...any) {
	w.logger.Printf("[ERROR] " + msg + formatArgs(args))
}

// formatArgs formats structured logging arguments as a string.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	result := " |"
	for i := 0; i < len(args)-1; i += 2 {
		result += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}
	return result
}

// NopLogger is a logger that discards all log messages.
type NopLogger struct{}

// Printf implements Logger.Printf.
func (NopLogger) Printf(format string, v ...any) {}

// Debug implements StructuredLogger.Debug.
func (NopLogger) Debug(msg string, args ...any) {}

// Info implements StructuredLogger.Info.
func (NopLogger) Info(msg string, args ...any) {}

// Warn implements StructuredLogger.Warn.
func (NopLogger) Warn(msg string, args ...any) {}

// Error implements StructuredLogger.Error.
func (NopLogger) Error(msg string, args ...any) {}

// Ensure NopLogger implements both interfaces.
var (
	_ Logger           = NopLogger{}
	_ StructuredLogger = NopLogger{}
)

// SlogAdapter adapts a slog.Logger to the StructuredLogger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter wrapping the given slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements StructuredLogger.Debug.
func (a *SlogAdapter) Debug(msg string, args ...any) {
	a.logger.Debug(msg, args...)
}

// Info implements StructuredLogger.Info.
func (a *SlogAdapter) Info(msg string, args ...any) {
	a.logger.Info(msg, args...)
}

// Warn implements StructuredLogger.Warn.
func (a *SlogAdapter) Warn(msg string, args ...any) {
	a.logger.Warn(msg, args...)
}

// Error implements StructuredLogger.Error.
func (a *SlogAdapter) Error(msg string, args ...any) {
	a.logger.Error(msg, args...)
}

// ZerologAdapter adapts a zerolog.Logger to the StructuredLogger interface.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	client, _ := uber.New(token,
//	    uber.WithStructuredLogger(uber.NewZerologAdapter(logger)),
//	)
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new ZerologAdapter wrapping the given logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug implements StructuredLogger.Debug.
func (a *ZerologAdapter) Debug(msg string, args ...any) {
	a.event(a.logger.Debug(), args).Msg(msg)
}

// Info implements StructuredLogger.Info.
func (a *ZerologAdapter) Info(msg string, args ...any) {
	a.event(a.logger.Info(), args).Msg(msg)
}

// Warn implements StructuredLogger.Warn.
func (a *ZerologAdapter) Warn(msg string, args ...any) {
	a.event(a.logger.Warn(), args).Msg(msg)
}

// Error implements StructuredLogger.Error.
func (a *ZerologAdapter) Error(msg string, args ...any) {
	a.event(a.logger.Error(), args).Msg(msg)
}

// event attaches key-value pairs to a zerolog event. Keys that are not
// strings are stringified; a trailing unpaired value is dropped.
func (a *ZerologAdapter) event(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		e = e.Interface(key, args[i+1])
	}
	return e
}

// Ensure adapters implement StructuredLogger.
var (
	_ StructuredLogger = (*SlogAdapter)(nil)
	_ StructuredLogger = (*ZerologAdapter)(nil)
)

// MaskAuthHeader masks an Authorization header value for safe logging.
func MaskAuthHeader(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return "Bearer ********"
	}
	if strings.HasPrefix(header, "Token ") {
		return "Token ********"
	}
	return "********"
}
