package journal

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/amirhossein-jamali/async-logger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/async-logger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/async-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/async-logger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/async-logger/internal/domain/port/usecase"
)

// TimestampLayout is the layout of the entry timestamp, millisecond precision in local time
const TimestampLayout = "2006-01-02 15:04:05.000"

// Logger writes leveled entries to a sink it exclusively owns.
// Entries below the threshold are dropped before the write lock is taken.
type Logger struct {
	mu           sync.Mutex
	sink         persistence.Sink
	path         string
	threshold    atomic.Int32 // outside mu so filtering never waits behind an in-flight write
	timeProvider coreport.TimeProvider
	diag         coreport.Logger
}

var _ usecase.RecordLogger = (*Logger)(nil)

// NewLogger opens the sink at path for appending and returns a logger filtering at threshold.
// If the sink cannot be opened no logger is returned and the error wraps ErrSinkUnavailable.
func NewLogger(
	opener persistence.SinkOpener,
	path string,
	threshold entity.Severity,
	timeProvider coreport.TimeProvider,
	diag coreport.Logger,
) (*Logger, error) {
	if opener == nil || timeProvider == nil || diag == nil {
		panic("journal: logger dependencies cannot be nil")
	}

	sink, err := opener.Open(path)
	if err != nil {
		sinkErr := errs.NewSinkError(path, "open", errs.ErrSinkUnavailable, err)
		diag.Error("Failed to open log sink", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return nil, sinkErr
	}

	l := &Logger{
		sink:         sink,
		path:         path,
		timeProvider: timeProvider,
		diag:         diag,
	}
	l.threshold.Store(int32(threshold))

	diag.Debug("Log sink opened", map[string]any{
		"path":      path,
		"threshold": threshold.String(),
	})

	return l, nil
}

// Log writes message at level unless level is below the current threshold.
// The entry is flushed before Log returns. Failures are reported on the
// diagnostics channel and the entry is dropped.
func (l *Logger) Log(message string, level entity.Severity) {
	if level.Below(l.Threshold()) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sink == nil || !l.sink.IsOpen() {
		l.report(errs.NewSinkError(l.path, "write", errs.ErrSinkClosed, nil), message, level)
		return
	}

	entry := l.formatEntry(message, level)

	if err := l.sink.WriteLine(entry); err != nil {
		l.report(errs.NewSinkError(l.path, "write", errs.ErrWriteFailed, err), message, level)
		return
	}

	if err := l.sink.Flush(); err != nil {
		l.report(errs.NewSinkError(l.path, "flush", errs.ErrFlushFailed, err), message, level)
	}
}

// SetThreshold changes the minimum severity written to the sink
func (l *Logger) SetThreshold(level entity.Severity) {
	l.threshold.Store(int32(level))
}

// Threshold returns the minimum severity written to the sink
func (l *Logger) Threshold() entity.Severity {
	return entity.Severity(l.threshold.Load())
}

// Path returns the sink location the logger was opened with
func (l *Logger) Path() string {
	return l.path
}

// Close flushes and closes the sink. Subsequent calls are no-ops.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sink == nil {
		return nil
	}

	sink := l.sink
	l.sink = nil

	if err := sink.Close(); err != nil {
		sinkErr := errs.NewSinkError(l.path, "close", errs.ErrFlushFailed, err)
		l.diag.Error("Failed to close log sink", map[string]any{
			"path":  l.path,
			"error": err.Error(),
		})
		return sinkErr
	}

	l.diag.Debug("Log sink closed", map[string]any{
		"path": l.path,
	})

	return nil
}

// formatEntry renders "[timestamp] [LEVEL] message"
func (l *Logger) formatEntry(message string, level entity.Severity) string {
	var b strings.Builder
	b.Grow(len(TimestampLayout) + len(message) + 16)
	b.WriteByte('[')
	b.WriteString(l.timeProvider.Now().Local().Format(TimestampLayout))
	b.WriteString("] [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(message)
	return b.String()
}

// report sends a write-path failure to the diagnostics channel
func (l *Logger) report(err error, message string, level entity.Severity) {
	fields := map[string]any{
		"error":          err.Error(),
		"level":          level.String(),
		"message_length": len(message),
	}
	var sinkErr *errs.SinkError
	if errors.As(err, &sinkErr) {
		for k, v := range sinkErr.LogFields() {
			if _, exists := fields[k]; !exists {
				fields[k] = v
			}
		}
	}
	l.diag.Error("Failed to write log entry", fields)
}
