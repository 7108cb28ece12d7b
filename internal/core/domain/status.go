package domain

import "strings"

// PrepareStatus is the outcome of preparing an environment.
type PrepareStatus string

const (
	// PrepareStatusCreated indicates the prefix was (re)built from the lockfile.
	PrepareStatusCreated PrepareStatus = "created"
	// PrepareStatusUpToDate indicates the prefix already matched the lockfile.
	PrepareStatusUpToDate PrepareStatus = "up-to-date"
	// PrepareStatusInconsistent indicates the prefix exists but differs from the
	// lockfile and was left untouched.
	PrepareStatusInconsistent PrepareStatus = "inconsistent"
)

// IsConsistent reports whether the prefix matches its lockfile after preparing.
func (s PrepareStatus) IsConsistent() bool {
	switch s {
	case PrepareStatusCreated, PrepareStatusUpToDate:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARNING"
	case LogLevelError:
		return "ERROR"
	default:
		return "WARNING"
	}
}

// ParseLogLevel converts a level name such as "DEBUG" or "warning" into a LogLevel.
// Unknown names fall back to LogLevelWarn.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR", "CRITICAL":
		return LogLevelError
	default:
		return LogLevelWarn
	}
}
