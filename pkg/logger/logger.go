// Package logger is the process-wide structured logger.
//
// Call sites pass a message followed by key/value pairs. An error passed in
// key position is attached under the "error" field:
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to save profile", err)
//	logger.Warn("catalog fallback", "reason", "empty", "error", err)
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	setup(os.Stderr, "development", os.Getenv("LOG_LEVEL"))
}

// Init configures the global logger for the given environment.
// Production writes JSON; anything else writes human-readable console output.
func Init(environment string) {
	mu.Lock()
	defer mu.Unlock()
	setup(os.Stderr, environment, os.Getenv("LOG_LEVEL"))
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer, environment, level string) {
	mu.Lock()
	defer mu.Unlock()
	setup(w, environment, level)
}

func setup(w io.Writer, environment, level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(level, environment))

	out := w
	if !strings.EqualFold(environment, "production") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	log = zerolog.New(out).With().Timestamp().Logger()
}

func parseLevel(level, environment string) zerolog.Level {
	if level == "" {
		if strings.EqualFold(environment, "production") {
			return zerolog.InfoLevel
		}
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func Debug(msg string, args ...any) {
	emit(zerolog.DebugLevel, msg, args)
}

func Info(msg string, args ...any) {
	emit(zerolog.InfoLevel, msg, args)
}

func Warn(msg string, args ...any) {
	emit(zerolog.WarnLevel, msg, args)
}

func Error(msg string, args ...any) {
	emit(zerolog.ErrorLevel, msg, args)
}

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	emit(zerolog.FatalLevel, msg, args)
}

func emit(level zerolog.Level, msg string, args []any) {
	mu.RLock()
	l := log
	mu.RUnlock()

	ev := l.WithLevel(level)
	if ev == nil {
		return
	}
	ev = withFields(ev, args)
	ev.Msg(msg)

	if level == zerolog.FatalLevel {
		os.Exit(1)
	}
}

func withFields(ev *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			ev = ev.Err(v)
		case string:
			if i+1 >= len(args) {
				ev = ev.Str("extra", v)
				continue
			}
			if err, ok := args[i+1].(error); ok {
				ev = ev.AnErr(v, err)
			} else {
				ev = ev.Interface(v, args[i+1])
			}
			i++
		default:
			ev = ev.Interface(fmt.Sprintf("arg%d", i), v)
		}
	}
	return ev
}
