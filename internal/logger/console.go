// Package logger provides the console logger used for scan diagnostics.
//
// Diagnostics are written as "[HH:MM:SS] [LEVEL] message" lines, filtered by a
// minimum level, and coloured only when the destination is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/csvsearch/internal/models"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ValidLevels lists the accepted level names in increasing severity.
var ValidLevels = []string{"trace", "debug", "info", "warn", "error"}

// ConsoleLogger logs scan progress and per-file failures to a writer.
// It is safe for concurrent use.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// An empty or unknown logLevel falls back to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: IsTerminal(writer),
	}
}

// IsTerminal reports whether w is a terminal that should receive ANSI colours.
// NO_COLOR and friends are honoured through color.NoColor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsValidLevel reports whether level names a known log level.
func IsValidLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, l := range ValidLevels {
		if l == level {
			return true
		}
	}
	return false
}

func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return "info"
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message.
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogScanStart logs the request and the number of candidate files at DEBUG level.
func (cl *ConsoleLogger) LogScanStart(req *models.SearchRequest, files int) {
	cl.logWithLevel("DEBUG", fmt.Sprintf("Scanning %d CSV files (%s)", files, req))
}

// LogFileSkipped logs a file that produced nothing without failing, at DEBUG level.
func (cl *ConsoleLogger) LogFileSkipped(path, reason string) {
	cl.logWithLevel("DEBUG", fmt.Sprintf("%s: skipped (%s)", path, reason))
}

// LogFileError logs a file abandoned during the scan at ERROR level.
// The message starts with the offending path.
func (cl *ConsoleLogger) LogFileError(err *models.FileError) {
	cl.logWithLevel("ERROR", err.Error())
}

// LogWalkError logs a non-fatal traversal problem at WARN level.
func (cl *ConsoleLogger) LogWalkError(err error) {
	cl.logWithLevel("WARN", err.Error())
}

// LogScanComplete logs the scan totals at DEBUG level.
// Format: "Scan complete: <n> files, <m> matches, <f> failed (<duration>)"
func (cl *ConsoleLogger) LogScanComplete(summary models.ScanSummary) {
	cl.logWithLevel("DEBUG", fmt.Sprintf("Scan complete: %d files, %d matches, %d failed (%s)",
		summary.FilesScanned, summary.Matches, summary.FailedFiles, formatDuration(summary.Duration)))
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tag := level
	if cl.colorOutput {
		tag = levelColor(level).Sprint(level)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), tag, message)
}

func levelColor(level string) *color.Color {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack)
	case "DEBUG":
		return color.New(color.FgCyan)
	case "INFO":
		return color.New(color.FgBlue)
	case "WARN":
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration renders d with millisecond precision below a minute.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Microsecond).String()
	}
	if d < time.Minute {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOpLogger creates a logger that drops every message.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogScanStart is a no-op.
func (n *NoOpLogger) LogScanStart(req *models.SearchRequest, files int) {}

// LogFileSkipped is a no-op.
func (n *NoOpLogger) LogFileSkipped(path, reason string) {}

// LogFileError is a no-op.
func (n *NoOpLogger) LogFileError(err *models.FileError) {}

// LogWalkError is a no-op.
func (n *NoOpLogger) LogWalkError(err error) {}

// LogScanComplete is a no-op.
func (n *NoOpLogger) LogScanComplete(summary models.ScanSummary) {}
