package sink

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/async-logger/internal/domain/port/persistence"
)

// defaultBufferSize is the size of the write buffer in front of the file
const defaultBufferSize = 4096

var errEmptyPath = errors.New("sink path is empty")

// FileOpener opens append-only file sinks. The path is always a plain file
// name, so names like "stdout" or "run:1.log" create files of that name.
type FileOpener struct {
	bufferSize int
}

var _ persistence.SinkOpener = (*FileOpener)(nil)

// NewFileOpener creates an opener using the default buffer size
func NewFileOpener() *FileOpener {
	return &FileOpener{bufferSize: defaultBufferSize}
}

// Open opens path for appending, creating the file if it does not exist
func (o *FileOpener) Open(path string) (persistence.Sink, error) {
	if path == "" {
		return nil, errEmptyPath
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	ws := zapcore.AddSync(f)

	size := o.bufferSize
	if size <= 0 {
		size = defaultBufferSize
	}

	return &FileSink{
		ws:      ws,
		buf:     bufio.NewWriterSize(ws, size),
		closeFn: f.Close,
	}, nil
}

// FileSink is a buffered append-only text sink.
// Callers serialize access; the mutex only protects open/closed state.
type FileSink struct {
	mu      sync.Mutex
	ws      zapcore.WriteSyncer
	buf     *bufio.Writer
	closeFn func() error
}

var _ persistence.Sink = (*FileSink)(nil)

// WriteLine buffers entry and a trailing newline
func (s *FileSink) WriteLine(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return errSinkClosed
	}
	if _, err := s.buf.WriteString(entry); err != nil {
		return err
	}
	return s.buf.WriteByte('\n')
}

// Flush hands buffered entries to the operating system
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return errSinkClosed
	}
	return s.buf.Flush()
}

// Close flushes, syncs and closes the underlying file.
// Closing an already closed sink is a no-op.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return nil
	}

	err := s.buf.Flush()
	if syncErr := s.ws.Sync(); syncErr != nil && !isUnsupportedSync(syncErr) {
		err = errors.Join(err, syncErr)
	}
	if closeErr := s.closeFn(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	s.buf = nil
	s.ws = nil
	return err
}

// IsOpen reports whether Close has not been called yet
func (s *FileSink) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf != nil
}
