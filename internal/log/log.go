// Package log provides structured logging for the wallet tooling.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the root logger. Component loggers below derive from it and
// are rebuilt whenever Init replaces it.
var Logger zerolog.Logger

// Per-component loggers, each tagged with a component field.
var (
	Client   zerolog.Logger
	Registry zerolog.Logger
	Wallet   zerolog.Logger
	Storage  zerolog.Logger
	Builder  zerolog.Logger
)

func init() {
	Logger = NewConsoleLogger(os.Stdout, "info")
	rebuildComponents()
}

// Init configures the root logger. Console output is colored unless
// jsonOutput is set; when file is non-empty the same events are also
// appended there, always as JSON so the file stays machine-parseable.
func Init(level string, jsonOutput bool, file string) error {
	var console io.Writer = os.Stdout
	if !jsonOutput {
		console = consoleWriter(os.Stdout)
	}

	writer := console
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		writer = zerolog.MultiLevelWriter(console, f)
	}

	Logger = zerolog.New(writer).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
	rebuildComponents()
	return nil
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    false,
	}
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(consoleWriter(w)).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// NewJSONLogger creates a structured JSON logger.
func NewJSONLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func rebuildComponents() {
	Client = WithComponent("client")
	Registry = WithComponent("registry")
	Wallet = WithComponent("wallet")
	Storage = WithComponent("storage")
	Builder = WithComponent("builder")
}

// WithComponent returns a child logger tagged with a component field.
func WithComponent(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

// Debug starts a debug event on the root logger.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info event on the root logger.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warning event on the root logger.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error event on the root logger.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal starts a fatal event on the root logger; the event exits the
// process when sent.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// Benchmark returns a func that logs the elapsed time since the call.
// Intended for defer.
func Benchmark(name string) func() {
	start := time.Now()
	return func() {
		Logger.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("benchmark")
	}
}
