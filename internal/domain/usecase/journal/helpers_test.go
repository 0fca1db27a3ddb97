package journal

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/async-logger/internal/domain/entity"
	"github.com/amirhossein-jamali/async-logger/internal/domain/port/persistence"
	mockcore "github.com/amirhossein-jamali/async-logger/mocks/port/core"
)

var fixedTime = time.Date(2024, 3, 15, 9, 30, 5, 123_000_000, time.Local)

const fixedStamp = "[2024-03-15 09:30:05.123]"

// memorySink keeps written lines in memory and can be told to fail
type memorySink struct {
	mu       sync.Mutex
	lines    []string
	closed   bool
	flushes  int
	writeErr error
	flushErr error
	closeErr error
}

func (s *memorySink) WriteLine(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("write on closed sink")
	}
	if s.writeErr != nil {
		return s.writeErr
	}
	s.lines = append(s.lines, entry)
	return nil
}

func (s *memorySink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	return s.flushErr
}

func (s *memorySink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return s.closeErr
}

func (s *memorySink) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *memorySink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func (s *memorySink) setWriteErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

func (s *memorySink) closeExternally() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// memoryOpener hands out a single memorySink or fails with err
type memoryOpener struct {
	sink  *memorySink
	err   error
	paths []string
}

func (o *memoryOpener) Open(path string) (persistence.Sink, error) {
	o.paths = append(o.paths, path)
	if o.err != nil {
		return nil, o.err
	}
	return o.sink, nil
}

// newQuietDiag returns a diagnostics mock that accepts any call
func newQuietDiag(t *testing.T) *mockcore.MockLogger {
	diag := mockcore.NewMockLogger(t)
	diag.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	diag.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	diag.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	diag.EXPECT().Error(mock.Anything, mock.Anything).Return().Maybe()
	return diag
}

// newFixedClock returns a time provider frozen at fixedTime
func newFixedClock(t *testing.T) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(time.Duration(0)).Maybe()
	return clock
}

// newTestLogger opens a logger over a fresh memorySink
func newTestLogger(t *testing.T, threshold entity.Severity) (*Logger, *memorySink) {
	t.Helper()
	sink := &memorySink{}
	logger, err := NewLogger(&memoryOpener{sink: sink}, "memory.log", threshold, newFixedClock(t), newQuietDiag(t))
	require.NoError(t, err)
	return logger, sink
}
