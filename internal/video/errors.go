package video

import (
	"errors"
	"fmt"

	"github.com/hbomb79/Reel/internal/ffmpeg"
	"github.com/hbomb79/Reel/internal/storage"
)

var (
	// ErrNotFound is returned when a record does not exist, or belongs to another owner.
	ErrNotFound = errors.New("video not found")

	ErrTranscodePending    = errors.New("transcoded file not yet available")
	ErrTranscodeInProgress = errors.New("video is already being transcoded")
	ErrInvalidTransition   = errors.New("status transition not permitted")
	ErrInvalidInput        = errors.New("invalid input")
	ErrStorage             = errors.New("storage failure")

	ErrProbe     = ffmpeg.ErrProbe
	ErrThumbnail = ffmpeg.ErrThumbnail
	ErrTranscode = ffmpeg.ErrTranscode
)

// wrapObjectError maps object store failures on to the video error kinds. Range
// failures are passed through untouched so that callers can report them as such.
func wrapObjectError(action string, key string, err error) error {
	switch {
	case errors.Is(err, storage.ErrObjectNotFound):
		return fmt.Errorf("%w: %s %s: %w", ErrNotFound, action, key, err)
	case errors.Is(err, storage.ErrRangeNotSatisfiable), errors.Is(err, storage.ErrInvalidRange):
		return fmt.Errorf("%s %s: %w", action, key, err)
	}

	return fmt.Errorf("%w: %s %s: %w", ErrStorage, action, key, err)
}
