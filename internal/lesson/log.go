package lesson

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// LogType classifies a session log entry.
type LogType string

// Session log entry types
const (
	LogInfo        LogType = "info"
	LogSuccess     LogType = "success"
	LogError       LogType = "error"
	LogAPICall     LogType = "api-call"
	LogAPIResponse LogType = "api-response"
)

// DefaultTruncateLength is the details length kept by TruncateText.
const DefaultTruncateLength = 200

// LogEntry is one line of the client-visible system log.
type LogEntry struct {
	ID        string                 `json:"id"`
	Timestamp int64                  `json:"timestamp"`
	Type      LogType                `json:"type"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewLogEntry creates an entry stamped with the current time and a fresh id.
// details is truncated to DefaultTruncateLength characters.
func NewLogEntry(logType LogType, message, details string, metadata map[string]interface{}) LogEntry {
	return LogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
		Type:      logType,
		Message:   message,
		Details:   TruncateText(details, DefaultTruncateLength),
		Metadata:  metadata,
	}
}

// TruncateText shortens text to maxLength characters followed by "...".
// Text already within the limit is returned unchanged.
func TruncateText(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLength]) + "..."
}
