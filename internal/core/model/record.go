package model

import (
	"time"
)

// Severity classifies a log record. Only two severities exist in the
// log format; anything else fails record parsing.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityError Severity = "ERROR"
)

// ParseSeverity validates a severity token from a raw record.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case string(SeverityInfo):
		return SeverityInfo, true
	case string(SeverityError):
		return SeverityError, true
	default:
		return "", false
	}
}

// LogRecord is one parsed log entry. Records are immutable once parsed;
// timestamps are always interpreted as UTC at ingestion.
type LogRecord struct {
	RequestID    string    `json:"request_id"`
	Timestamp    time.Time `json:"timestamp"`
	SourceFile   string    `json:"source_file"`
	FunctionName string    `json:"function_name"`
	Severity     Severity  `json:"severity"`
	Message      string    `json:"message"`
	ExtraInfo    ExtraInfo `json:"extra_info"`
}

// SessionRow is a LogRecord annotated with the gap in seconds to the
// previous record sharing the same request id.
type SessionRow struct {
	LogRecord
	TimeDeltaSeconds float64 `json:"time_delta_seconds"`
}
