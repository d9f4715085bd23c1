// Package logger provides the console logger used by the filematcher CLI.
//
// Messages are levelled (trace, debug, info, warn, error), timestamped and
// colored when written to a terminal. The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders log messages by severity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

var levelColors = [...]color.Attribute{color.FgHiBlack, color.FgCyan, color.FgBlue, color.FgYellow, color.FgRed}

// ParseLevel maps a case-insensitive level name to a Level. Unknown or empty
// names yield LevelInfo.
func ParseLevel(name string) Level {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == name {
			return Level(i)
		}
	}
	return LevelInfo
}

// String returns the lowercase level name.
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// tag is the bracketed label written in front of each message.
func (l Level) tag(colored bool) string {
	label := strings.ToUpper(l.String())
	if !colored {
		return label
	}
	return color.New(levelColors[l]).Sprint(label)
}

// ConsoleLogger writes search progress to a writer, one timestamped line per
// message. Color is used only when the writer is the process's stdout or
// stderr and the terminal supports it.
type ConsoleLogger struct {
	writer      io.Writer
	level       Level
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive); anything
// else means info.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		level:       ParseLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// color.NoColor is false only for a TTY without NO_COLOR set
		return !color.NoColor
	}
	return false
}

// Level returns the minimum level that is written.
func (cl *ConsoleLogger) Level() Level {
	return cl.level
}

// Enabled reports whether messages at level are written.
func (cl *ConsoleLogger) Enabled(level Level) bool {
	return cl.writer != nil && level >= cl.level
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.log(LevelTrace, message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.log(LevelDebug, message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.log(LevelInfo, message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.log(LevelWarn, message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.log(LevelError, message)
}

func (cl *ConsoleLogger) log(level Level, message string) {
	if !cl.Enabled(level) {
		return
	}
	cl.writeLine(fmt.Sprintf("[%s] %s", level.tag(cl.colorOutput), message))
}

// writeLine prefixes line with the timestamp and writes it atomically.
func (cl *ConsoleLogger) writeLine(line string) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintf(cl.writer, "[%s] %s\n", timestamp(), line)
}

// LogSearchStart logs the criterion and roots of a search at info level.
// Format: "[HH:MM:SS] Searching <criterion> within <root>, <root>"
func (cl *ConsoleLogger) LogSearchStart(criterion string, roots []string) {
	if !cl.Enabled(LevelInfo) {
		return
	}

	target := criterion
	if cl.colorOutput {
		target = color.New(color.Bold).Sprint(criterion)
	}
	cl.writeLine(fmt.Sprintf("Searching %s within %s", target, strings.Join(roots, ", ")))
}

// LogSearchComplete logs the number of matches and elapsed time at info level.
// Format: "[HH:MM:SS] Search complete: <n> match(es) (<duration>)"
func (cl *ConsoleLogger) LogSearchComplete(matches int, duration time.Duration) {
	if !cl.Enabled(LevelInfo) {
		return
	}

	count := fmt.Sprintf("%d match(es)", matches)
	if cl.colorOutput {
		attr := color.FgGreen
		if matches == 0 {
			attr = color.FgYellow
		}
		count = color.New(attr).Sprint(count)
	}
	cl.writeLine(fmt.Sprintf("Search complete: %s (%s)", count, formatDuration(duration)))
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration renders d as "850ms", "5s", "1m30s" or "2m".
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", d/time.Second)
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}
