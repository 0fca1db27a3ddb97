package entity

// LogRecord is a single message waiting to be written.
// It is immutable once created; its only ordering is its queue position.
type LogRecord struct {
	Message string
	Level   Severity
}

// NewLogRecord creates a record for the given message and severity
func NewLogRecord(message string, level Severity) LogRecord {
	return LogRecord{
		Message: message,
		Level:   level,
	}
}

// IsEmpty reports whether the record carries no message text
func (r LogRecord) IsEmpty() bool {
	return r.Message == ""
}
