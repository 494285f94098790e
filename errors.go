package tipatask

import (
	"errors"

	"github.com/donskikhas/tipatask-sub001/internal/model"
	"github.com/donskikhas/tipatask-sub001/internal/pushqueue"
)

// ErrBackPressure is returned by a mutating accessor when the push queue is
// full. The local write has already succeeded; only the remote write could
// not be scheduled.
var ErrBackPressure = errors.New("back-pressure (push queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrNotFound is re-exported so callers compare against a single symbol.
var ErrNotFound = model.ErrNotFound

// mapQueueErr converts internal queue errors into the public sentinel.
func mapQueueErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pushqueue.ErrQueueFull) {
		return ErrBackPressure
	}
	return err
}
