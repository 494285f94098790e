package pushqueue

import (
	"errors"
	"fmt"
)

// ErrExecutorClosed is returned by Submit after Stop has been called.
var ErrExecutorClosed = errors.New("pushqueue: executor closed")

// ErrQueueFull is the sentinel wrapped by QueueFullError.
var ErrQueueFull = errors.New("pushqueue: queue full")

// QueueFullError reports that the queue had no room within EnqueueTimeout.
type QueueFullError struct {
	Length   int
	Capacity int
}

// Error implements the error interface.
func (e *QueueFullError) Error() string {
	return fmt.Sprintf("pushqueue: queue full (%d/%d)", e.Length, e.Capacity)
}

// Unwrap lets callers match with errors.Is(err, ErrQueueFull).
func (e *QueueFullError) Unwrap() error { return ErrQueueFull }
