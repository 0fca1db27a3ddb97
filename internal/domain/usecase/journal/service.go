package journal

import (
	"strings"
	"sync"

	"github.com/amirhossein-jamali/async-logger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/async-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/async-logger/internal/domain/port/usecase"
)

// Service connects producers to the logger through the queue and its worker
type Service struct {
	logger usecase.RecordLogger
	queue  *MessageQueue
	worker *Worker
	diag   coreport.Logger

	shutdownOnce sync.Once
}

var _ usecase.JournalUseCase = (*Service)(nil)

// NewService creates the queue, starts the worker and returns the producer-facing service
func NewService(
	logger usecase.RecordLogger,
	timeProvider coreport.TimeProvider,
	diag coreport.Logger,
) *Service {
	queue := NewMessageQueue()
	worker := NewWorker(queue, logger, timeProvider, diag)
	worker.Start()

	return &Service{
		logger: logger,
		queue:  queue,
		worker: worker,
		diag:   diag,
	}
}

// Submit enqueues text. A trailing LOW, MEDIUM or HIGH word becomes the record level;
// otherwise the current threshold is used as the level.
func (s *Service) Submit(text string) entity.LogRecord {
	message, level, ok := splitLevelToken(text)
	if !ok {
		level = s.logger.Threshold()
	}
	return s.SubmitWithLevel(message, level)
}

// SubmitWithLevel enqueues message with an explicit level
func (s *Service) SubmitWithLevel(message string, level entity.Severity) entity.LogRecord {
	record := entity.NewLogRecord(message, level)
	s.queue.Enqueue(record)

	s.diag.Debug("Record enqueued", map[string]any{
		"level":   level.String(),
		"pending": s.Pending(),
	})

	return record
}

// ChangeLevel parses text and applies it as the new threshold.
// Unrecognized text resolves to MEDIUM.
func (s *Service) ChangeLevel(text string) entity.Severity {
	level := entity.ParseSeverity(text)
	previous := s.logger.Threshold()
	s.logger.SetThreshold(level)

	s.diag.Info("Threshold changed", map[string]any{
		"from": previous.String(),
		"to":   level.String(),
	})

	return level
}

// Threshold returns the logger's current threshold
func (s *Service) Threshold() entity.Severity {
	return s.logger.Threshold()
}

// Pending returns the number of records not yet taken by the worker
func (s *Service) Pending() int {
	return s.queue.Len()
}

// Processed returns the number of records the worker forwarded to the logger.
// It blocks until the worker has exited, so call it after Shutdown.
func (s *Service) Processed() int {
	return s.worker.Processed()
}

// Shutdown requests queue shutdown and waits for the worker to drain it.
// Concurrent and repeated calls all return once the worker has exited.
func (s *Service) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.diag.Info("Shutting down journal", map[string]any{
			"pending": s.Pending(),
		})
		s.queue.RequestShutdown()
	})
	s.worker.Wait()
}

// splitLevelToken strips a trailing canonical level word from text.
// Only the exact words LOW, MEDIUM and HIGH count; synonyms stay in the message.
func splitLevelToken(text string) (string, entity.Severity, bool) {
	idx := strings.LastIndexByte(text, ' ')
	if idx < 0 {
		return text, entity.DefaultSeverity, false
	}

	word := text[idx+1:]
	if !entity.IsSeverityToken(word) {
		return text, entity.DefaultSeverity, false
	}

	return text[:idx], entity.ParseSeverity(word), true
}
