package usecase

import (
	"github.com/amirhossein-jamali/async-logger/internal/domain/entity"
)

// RecordLogger writes leveled records to the sink
type RecordLogger interface {
	// Log formats and writes message if level is not below the threshold
	Log(message string, level entity.Severity)
	// SetThreshold changes the minimum severity that is written
	SetThreshold(level entity.Severity)
	// Threshold returns the current minimum severity
	Threshold() entity.Severity
	// Close flushes and closes the sink; safe to call more than once
	Close() error
}

// JournalUseCase is the surface offered to producers such as the interactive shell
type JournalUseCase interface {
	// Submit enqueues text. A trailing LOW, MEDIUM or HIGH word is used as the level and
	// stripped from the message; otherwise the current threshold is used as the level.
	Submit(text string) entity.LogRecord

	// SubmitWithLevel enqueues message with an explicit level
	SubmitWithLevel(message string, level entity.Severity) entity.LogRecord

	// ChangeLevel parses text and applies it as the new threshold, returning the applied level
	ChangeLevel(text string) entity.Severity

	// Threshold returns the current threshold
	Threshold() entity.Severity

	// Shutdown requests queue shutdown and waits until the worker has drained the queue
	Shutdown()
}
