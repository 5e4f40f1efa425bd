package parser

import (
	"regexp"
	"time"

	"github.com/penwyp/go-log-lens/internal/core/model"
)

// RecordDelimiter marks the start of a record's trailing payload. A line
// containing it terminates the current record blob during file reading.
const RecordDelimiter = ", extra_info: "

// recordPattern matches one record blob. The message group is greedy so
// that it runs to the LAST occurrence of the payload delimiter: commas
// and delimiter-like substrings inside the message never terminate the
// field early. (?s) lets the message span physical lines.
var recordPattern = regexp.MustCompile(
	`(?s)request_id: (?P<request_id>[^,]+), ` +
		`(?P<timestamp>[^,]+), ` +
		`(?P<source_file>[^,]+), ` +
		`(?P<function_name>[^,]+), ` +
		`(?P<severity>INFO|ERROR): ` +
		`(?P<message>.*), extra_info: (?P<extra_info>.+)`)

// timestampLayouts are tried in order when parsing a record timestamp.
// Timestamps carry no zone marker and are interpreted as UTC.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
	time.RFC3339,
}

// ParseRecord attempts to parse one record blob. A blob that does not
// match the record grammar yields no record; callers treat that as a
// silent skip, never an error.
func ParseRecord(blob string) (model.LogRecord, bool) {
	match := recordPattern.FindStringSubmatch(blob)
	if match == nil {
		return model.LogRecord{}, false
	}

	groups := make(map[string]string, len(match))
	for i, name := range recordPattern.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}

	severity, ok := model.ParseSeverity(groups["severity"])
	if !ok {
		return model.LogRecord{}, false
	}

	timestamp, ok := parseTimestamp(groups["timestamp"])
	if !ok {
		return model.LogRecord{}, false
	}

	return model.LogRecord{
		RequestID:    groups["request_id"],
		Timestamp:    timestamp,
		SourceFile:   groups["source_file"],
		FunctionName: groups["function_name"],
		Severity:     severity,
		Message:      groups["message"],
		ExtraInfo:    model.DecodeExtraInfo(groups["extra_info"]),
	}, true
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
