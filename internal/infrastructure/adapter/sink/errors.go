package sink

import (
	"errors"
	"syscall"
)

var errSinkClosed = errors.New("sink already closed")

// isUnsupportedSync reports fsync failures raised by terminals and pipes,
// which cannot be synced and are not a data loss.
func isUnsupportedSync(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.ENOTTY)
}
