package persistence

// Sink is an append-only text destination for formatted log entries.
// A Sink is owned by exactly one journal logger and is not safe for concurrent use.
type Sink interface {
	// WriteLine appends entry followed by a line terminator
	WriteLine(entry string) error
	// Flush pushes buffered data to the underlying storage
	Flush() error
	// Close flushes and releases the sink; further writes fail
	Close() error
	// IsOpen reports whether the sink still accepts writes
	IsOpen() bool
}

// SinkOpener opens a sink for appending
type SinkOpener interface {
	// Open opens path in append mode, creating it if needed
	Open(path string) (Sink, error)
}
