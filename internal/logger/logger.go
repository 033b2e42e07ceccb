// Package logger provides structured logging for the flp toolkit's
// non-core layers (CLIs, catalog, HTTP inspector).
//
// The core parser/serializer package logs nothing above TRACE and never
// depends on this package being configured — it is a pure function of its
// input bytes (see the top-level package doc). Everything outside the
// core — the catalog indexer, the HTTP inspector, the CLIs — uses this
// logger for operational visibility.
//
// Log output format:
//
//	YYYY/MM/DD HH:MM:SS.ssssss [PID] [LEVEL] message (file:line)
package logger

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level is the severity of a log message.
type Level int32

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var (
	currentLevel atomic.Int32
	processID    = os.Getpid()
	std          = log.New(os.Stdout, "", 0)

	// traceSubsystems tracks which named subsystems currently have TRACE
	// output enabled, so TRACE-level decode-path logging (e.g. the
	// disambiguation heuristic in lookahead.go) can be turned on without
	// dropping the global level to TRACE and flooding every other caller.
	traceMu         sync.RWMutex
	traceSubsystems = make(map[string]bool)
)

func init() {
	currentLevel.Store(int32(INFO))
}

// SetLevel sets the minimum level that will be emitted.
func SetLevel(level string) error {
	switch strings.ToUpper(level) {
	case "TRACE":
		currentLevel.Store(int32(TRACE))
	case "DEBUG":
		currentLevel.Store(int32(DEBUG))
	case "INFO":
		currentLevel.Store(int32(INFO))
	case "WARN":
		currentLevel.Store(int32(WARN))
	case "ERROR":
		currentLevel.Store(int32(ERROR))
	default:
		return fmt.Errorf("logger: invalid log level %q", level)
	}
	return nil
}

// Enabled reports whether level would currently be emitted. Useful to skip
// building an expensive message when the level is disabled.
func Enabled(level Level) bool {
	return level >= Level(currentLevel.Load())
}

// EnableTrace turns on TRACE-level output for the named subsystems, independent
// of the global minimum level.
func EnableTrace(subsystems ...string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	for _, s := range subsystems {
		traceSubsystems[s] = true
	}
}

// DisableTrace turns off TRACE-level output for the named subsystems.
func DisableTrace(subsystems ...string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	for _, s := range subsystems {
		delete(traceSubsystems, s)
	}
}

// subsystemTraceEnabled reports whether subsystem has TRACE output enabled.
func subsystemTraceEnabled(subsystem string) bool {
	traceMu.RLock()
	defer traceMu.RUnlock()
	return traceSubsystems[subsystem]
}

// TraceIf logs a TRACE message gated on both the global level and subsystem
// being enabled via EnableTrace, for narrow always-compiled trace points in
// hot decode paths that should stay silent until specifically asked for.
func TraceIf(subsystem, format string, args ...interface{}) {
	if !Enabled(TRACE) || !subsystemTraceEnabled(subsystem) {
		return
	}
	std.Println(formatMessage(TRACE, 2, format, args...))
}

func formatMessage(level Level, skip int, format string, args ...interface{}) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "unknown", 0
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("2006/01/02 15:04:05.000000")
	return fmt.Sprintf("%s [%d] [%s] %s (%s:%d)", ts, processID, levelNames[level], msg, file, line)
}

func logAt(level Level, format string, args ...interface{}) {
	if !Enabled(level) {
		return
	}
	std.Println(formatMessage(level, 3, format, args...))
}

func Trace(format string, args ...interface{}) { logAt(TRACE, format, args...) }
func Debug(format string, args ...interface{}) { logAt(DEBUG, format, args...) }
func Info(format string, args ...interface{})  { logAt(INFO, format, args...) }
func Warn(format string, args ...interface{})  { logAt(WARN, format, args...) }
func Error(format string, args ...interface{}) { logAt(ERROR, format, args...) }

// Fatal logs at ERROR and exits the process.
func Fatal(format string, args ...interface{}) {
	std.Println(formatMessage(ERROR, 2, format, args...))
	os.Exit(1)
}

// Configure applies FLP_LOG_LEVEL and FLP_TRACE_SUBSYSTEMS (a comma-separated
// subsystem list, e.g. "decoder") from the environment, if set.
func Configure() {
	if level := os.Getenv("FLP_LOG_LEVEL"); level != "" {
		if err := SetLevel(level); err != nil {
			Warn("%v", err)
		}
	}
	if trace := os.Getenv("FLP_TRACE_SUBSYSTEMS"); trace != "" {
		subsystems := strings.Split(trace, ",")
		for i, s := range subsystems {
			subsystems[i] = strings.TrimSpace(s)
		}
		EnableTrace(subsystems...)
	}
}
