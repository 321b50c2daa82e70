package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hbomb79/Reel/internal/storage"
	"github.com/hbomb79/Reel/internal/video"
	"github.com/labstack/echo/v4"
)

type (
	APIError struct {
		// Used to alter the HTTP response status in accordance with the error
		Status int `json:"-"`

		// A machine readable and stable identifier for the error case being represented
		Code string `json:"code"`

		// Human readable error display message
		Message string `json:"message"`
	}

	errorEnvelope struct {
		Error APIError `json:"error"`
	}
)

func (err APIError) Error() string {
	return fmt.Sprintf("api error: %s", err.Message)
}

// NewAPIError classifies the error in to the status, code and message sent to the client.
// Unclassified errors are reported as a 500 without exposing their message.
func NewAPIError(err error) APIError {
	var (
		apiErr     APIError
		httpErr    *echo.HTTPError
		maxSizeErr *http.MaxBytesError
	)

	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &maxSizeErr):
		return APIError{http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", fmt.Sprintf("Upload exceeds the %d byte limit", maxSizeErr.Limit)}
	case errors.Is(err, video.ErrNotFound):
		return APIError{http.StatusNotFound, "NOT_FOUND", "Video not found"}
	case errors.Is(err, video.ErrTranscodePending):
		return APIError{http.StatusConflict, "TRANSCODE_PENDING", "Transcoded file not yet available"}
	case errors.Is(err, video.ErrTranscodeInProgress):
		return APIError{http.StatusConflict, "TRANSCODE_IN_PROGRESS", "Video is already being transcoded"}
	case errors.Is(err, video.ErrInvalidTransition):
		return APIError{http.StatusConflict, "INVALID_STATE", err.Error()}
	case errors.Is(err, storage.ErrRangeNotSatisfiable):
		return APIError{http.StatusRequestedRangeNotSatisfiable, "RANGE_NOT_SATISFIABLE", err.Error()}
	case errors.Is(err, video.ErrInvalidInput), errors.Is(err, storage.ErrInvalidRange):
		return APIError{http.StatusBadRequest, "INVALID_INPUT", err.Error()}
	case errors.Is(err, video.ErrProbe):
		return APIError{http.StatusUnprocessableEntity, "PROBE_FAILED", err.Error()}
	case errors.Is(err, video.ErrThumbnail):
		return APIError{http.StatusUnprocessableEntity, "THUMBNAIL_FAILED", err.Error()}
	case errors.Is(err, video.ErrStorage), errors.Is(err, storage.ErrStorage):
		return APIError{http.StatusBadGateway, "STORAGE_ERROR", "Storage backend unavailable"}
	case errors.As(err, &httpErr):
		return APIError{httpErr.Code, statusCode(httpErr.Code), fmt.Sprint(httpErr.Message)}
	}

	return APIError{http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"}
}

// httpErrorHandler writes every error returned by a handler or middleware as an
// error envelope. This is the only place errors are mapped to responses.
func httpErrorHandler(err error, ec echo.Context) {
	apiErr := NewAPIError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		log.Errorf("%s %s failed (%d): %v\n", ec.Request().Method, ec.Request().URL.Path, apiErr.Status, err)
	} else {
		log.Debugf("%s %s rejected (%d): %v\n", ec.Request().Method, ec.Request().URL.Path, apiErr.Status, err)
	}

	if ec.Response().Committed {
		return
	}

	var rangeErr *storage.RangeNotSatisfiableError
	if errors.As(err, &rangeErr) {
		ec.Response().Header().Set("Content-Range", rangeErr.ContentRange())
	}

	if ec.Request().Method == http.MethodHead {
		err = ec.NoContent(apiErr.Status)
	} else {
		err = ec.JSON(apiErr.Status, errorEnvelope{Error: apiErr})
	}
	if err != nil {
		log.Warnf("Failed to write error response: %v\n", err)
	}
}

// statusCode converts a status in to a code such as NOT_FOUND.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}

	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
