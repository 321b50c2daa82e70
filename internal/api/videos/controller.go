package videos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/api/auth"
	"github.com/hbomb79/Reel/internal/metrics"
	"github.com/hbomb79/Reel/internal/storage"
	"github.com/hbomb79/Reel/internal/transcode"
	"github.com/hbomb79/Reel/internal/video"
	"github.com/hbomb79/Reel/pkg/logger"
	"github.com/labstack/echo/v4"
)

var log = logger.Get("VideoAPI")

const uploadFormField = "file"

type (
	Service interface {
		Ingest(ctx context.Context, ownerID string, upload video.Upload) (*video.Record, error)
		List(ctx context.Context, ownerID string, page int, limit int) (*video.Page, error)
		Get(ctx context.Context, id uuid.UUID, ownerID string) (*video.View, error)
		Stream(ctx context.Context, id uuid.UUID, ownerID string, variant video.Variant, byteRange *storage.ByteRange, download bool) (*video.Stream, error)
		Transcode(ctx context.Context, id uuid.UUID, ownerID string, preset string) (*video.Record, error)
		ThumbnailURL(ctx context.Context, id uuid.UUID, ownerID string) (string, error)
		PresignedURL(ctx context.Context, id uuid.UUID, ownerID string, variant video.Variant, download bool) (*video.PresignedURL, error)
		Delete(ctx context.Context, id uuid.UUID, ownerID string) error
		Tasks(ctx context.Context, id uuid.UUID, ownerID string) ([]*transcode.Task, error)
		CancelTranscode(ctx context.Context, id uuid.UUID, ownerID string, taskID uuid.UUID) error
	}

	Controller struct {
		validate       *validator.Validate
		service        Service
		maxUploadBytes int64
	}
)

func New(validate *validator.Validate, service Service, maxUploadBytes int64) *Controller {
	return &Controller{validate: validate, service: service, maxUploadBytes: maxUploadBytes}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.POST("/upload", controller.upload)
	eg.GET("", controller.list)
	eg.GET("/:id", controller.get)
	eg.DELETE("/:id", controller.delete)
	eg.GET("/:id/stream", controller.stream)
	eg.POST("/:id/transcode", controller.transcode)
	eg.GET("/:id/transcodes", controller.listTranscodes)
	eg.DELETE("/:id/transcodes/:taskId", controller.cancelTranscode)
	eg.GET("/:id/thumbnail", controller.thumbnail)
	eg.GET("/:id/presigned", controller.presigned)
}

// upload accepts a single multipart file under the 'file' field. Only video MIME
// types are accepted, and the request body is limited to the configured size.
func (controller *Controller) upload(ec echo.Context) error {
	ownerID, err := auth.OwnerID(ec)
	if err != nil {
		return err
	}

	req := ec.Request()
	if controller.maxUploadBytes > 0 {
		if req.ContentLength > controller.maxUploadBytes {
			return &http.MaxBytesError{Limit: controller.maxUploadBytes}
		}
		req.Body = http.MaxBytesReader(ec.Response(), req.Body, controller.maxUploadBytes)
	}

	fileHeader, err := ec.FormFile(uploadFormField)
	if err != nil {
		var maxSizeErr *http.MaxBytesError
		if errors.As(err, &maxSizeErr) {
			return err
		}

		return fmt.Errorf("%w: multipart field '%s' is required: %w", video.ErrInvalidInput, uploadFormField, err)
	}

	mimeType := fileHeader.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(mimeType), "video/") {
		return fmt.Errorf("%w: only video uploads are accepted, got %q", video.ErrInvalidInput, mimeType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	record, err := controller.service.Ingest(req.Context(), ownerID, video.Upload{
		Filename: fileHeader.Filename,
		MimeType: mimeType,
		Body:     file,
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusCreated, videoResponse{Video: record})
}

func (controller *Controller) list(ec echo.Context) error {
	ownerID, err := auth.OwnerID(ec)
	if err != nil {
		return err
	}

	page := intQueryParam(ec, "page", 1)
	limit := intQueryParam(ec, "limit", video.DefaultPageLimit)
	result, err := controller.service.List(ec.Request().Context(), ownerID, page, limit)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, result)
}

func (controller *Controller) get(ec echo.Context) error {
	ownerID, id, err := ownerAndVideoID(ec)
	if err != nil {
		return err
	}

	view, err := controller.service.Get(ec.Request().Context(), id, ownerID)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, videoResponse{Video: view})
}

// stream relays the requested variant, honouring a single byte range. The body is
// copied straight from the object store to the client.
func (controller *Controller) stream(ec echo.Context) error {
	ownerID, id, err := ownerAndVideoID(ec)
	if err != nil {
		return err
	}

	variant, err := video.ParseVariant(ec.QueryParam("variant"))
	if err != nil {
		return err
	}

	byteRange, err := storage.ParseRange(ec.Request().Header.Get("Range"))
	if err != nil {
		return err
	}

	download := boolQueryParam(ec, "download", false)
	stream, err := controller.service.Stream(ec.Request().Context(), id, ownerID, variant, byteRange, download)
	if err != nil {
		return err
	}
	defer stream.Body.Close()

	header := ec.Response().Header()
	header.Set(echo.HeaderContentType, stream.ContentType)
	header.Set("Accept-Ranges", "bytes")
	if stream.ContentLength > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(stream.ContentLength, 10))
	}
	if stream.ContentRange != "" {
		header.Set("Content-Range", stream.ContentRange)
	}
	if stream.ContentDisposition != "" {
		header.Set(echo.HeaderContentDisposition, stream.ContentDisposition)
	}
	ec.Response().WriteHeader(stream.StatusCode)

	n, err := io.Copy(ec.Response(), stream.Body)
	metrics.StreamedBytes.WithLabelValues(string(stream.Variant)).Add(float64(n))
	if err != nil {
		// Headers are already sent, so there is nothing left to tell the client
		log.Warnf("Stream of %s (%s) ended after %d bytes: %v\n", id, stream.Variant, n, err)
	}

	return nil
}

func (controller *Controller) transcode(ec echo.Context) error {
	ownerID, id, err := ownerAndVideoID(ec)
	if err != nil {
		return err
	}

	var request transcodeRequest
	if err := ec.Bind(&request); err != nil {
		return fmt.Errorf("%w: malformed transcode request: %w", video.ErrInvalidInput, err)
	}
	if err := controller.validate.Struct(request); err != nil {
		return fmt.Errorf("%w: invalid transcode request: %w", video.ErrInvalidInput, err)
	}

	record, err := controller.service.Transcode(ec.Request().Context(), id, ownerID, request.Preset)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusAccepted, videoResponse{Video: record})
}

func (controller *Controller) listTranscodes(ec echo.Context) error {
	ownerID, id, err := ownerAndVideoID(ec)
	if err != nil {
		return err
	}

	tasks, err := controller.service.Tasks(ec.Request().Context(), id, ownerID)
	if err != nil {
		return err
	}

	dtos := make([]transcodeTaskDto, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, newTranscodeTaskDto(task))
	}

	return ec.JSON(http.StatusOK, dtos)
}

func (controller *Controller) cancelTranscode(ec echo.Context) error {
	ownerID, id, err := ownerAndVideoID(ec)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(ec.Param("taskId"))
	if err != nil {
		return fmt.Errorf("%w: transcode task %s", video.ErrNotFound, ec.Param("taskId"))
	}

	if err := controller.service.CancelTranscode(ec.Request().Context(), id, ownerID, taskID); err != nil {
		return err
	}

	return ec.NoContent(http.StatusNoContent)
}

func (controller *Controller) thumbnail(ec echo.Context) error {
	ownerID, id, err := ownerAndVideoID(ec)
	if err != nil {
		return err
	}

	url, err := controller.service.ThumbnailURL(ec.Request().Context(), id, ownerID)
	if err != nil {
		return err
	}

	return ec.Redirect(http.StatusFound, url)
}

func (controller *Controller) presigned(ec echo.Context) error {
	ownerID, id, err := ownerAndVideoID(ec)
	if err != nil {
		return err
	}

	variant, err := video.ParseVariant(ec.QueryParam("variant"))
	if err != nil {
		return err
	}

	signed, err := controller.service.PresignedURL(ec.Request().Context(), id, ownerID, variant, boolQueryParam(ec, "download", true))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, signed)
}

func (controller *Controller) delete(ec echo.Context) error {
	ownerID, id, err := ownerAndVideoID(ec)
	if err != nil {
		return err
	}

	if err := controller.service.Delete(ec.Request().Context(), id, ownerID); err != nil {
		return err
	}

	return ec.NoContent(http.StatusNoContent)
}

// ownerAndVideoID extracts the authenticated owner and the video ID path parameter.
// An ID which is not a UUID can not exist, so is reported as not found.
func ownerAndVideoID(ec echo.Context) (string, uuid.UUID, error) {
	ownerID, err := auth.OwnerID(ec)
	if err != nil {
		return "", uuid.Nil, err
	}

	id, err := uuid.Parse(ec.Param("id"))
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("%w: %s", video.ErrNotFound, ec.Param("id"))
	}

	return ownerID, id, nil
}

func intQueryParam(ec echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(ec.QueryParam(name))
	if err != nil {
		return fallback
	}

	return v
}

func boolQueryParam(ec echo.Context, name string, fallback bool) bool {
	switch strings.ToLower(ec.QueryParam(name)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}

	return fallback
}
