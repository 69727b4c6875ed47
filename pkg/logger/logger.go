// Package logger is the process-wide structured logger.
//
// Calls take a message followed by key/value pairs:
//
//	logger.Info("server starting", "address", addr)
//	logger.Error("failed to load catalog", err)
//
// A value without a key is logged under "error" when it is an error and
// under "extra" otherwise.
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
	setup("development", "info", os.Stderr)
}

// Init configures the logger for an environment. Production writes JSON,
// anything else writes a human readable console format.
func Init(env string) {
	InitWithLevel(env, os.Getenv("LOG_LEVEL"))
}

func InitWithLevel(env, level string) {
	mu.Lock()
	defer mu.Unlock()
	setup(env, level, os.Stderr)
}

// SetOutput redirects log output; used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

func setup(env, level string, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(level))

	var w io.Writer = out
	if !strings.EqualFold(env, "production") {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	log = zerolog.New(w).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(msg string, args ...any) {
	emit(current().Debug(), msg, args)
}

func Info(msg string, args ...any) {
	emit(current().Info(), msg, args)
}

func Warn(msg string, args ...any) {
	emit(current().Warn(), msg, args)
}

func Error(msg string, args ...any) {
	emit(current().Error(), msg, args)
}

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	emit(current().Fatal(), msg, args)
}

func emit(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(args); i++ {
		key, ok := args[i].(string)
		if !ok || i == len(args)-1 {
			if err, isErr := args[i].(error); isErr {
				ev = ev.Err(err)
			} else {
				ev = ev.Interface("extra", args[i])
			}
			continue
		}
		val := args[i+1]
		i++
		switch v := val.(type) {
		case error:
			ev = ev.AnErr(key, v)
		case string:
			ev = ev.Str(key, v)
		case int:
			ev = ev.Int(key, v)
		case float64:
			ev = ev.Float64(key, v)
		case bool:
			ev = ev.Bool(key, v)
		case time.Duration:
			ev = ev.Dur(key, v)
		case fmt.Stringer:
			ev = ev.Stringer(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	ev.Msg(msg)
}
