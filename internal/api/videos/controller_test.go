package videos_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/api"
	"github.com/hbomb79/Reel/internal/api/auth"
	"github.com/hbomb79/Reel/internal/api/videos/mocks"
	"github.com/hbomb79/Reel/internal/storage"
	"github.com/hbomb79/Reel/internal/transcode"
	"github.com/hbomb79/Reel/internal/video"
	"github.com/hbomb79/Reel/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	secret  = "controller-test-secret"
	ownerID = "owner-1"

	maxUploadBytes = 1024
)

func init() {
	logger.SetMinLoggingLevel(logger.VERBOSE.Level())
}

type harness struct {
	service *mocks.MockService
	gateway *api.RestGateway
	token   string
}

func newHarness(t *testing.T) *harness {
	service := mocks.NewMockService(t)
	provider := auth.New(auth.Config{JWTSecret: secret})
	gateway := api.NewRestGateway(&api.RestConfig{HostAddr: "127.0.0.1:0", CorsOrigins: []string{"*"}}, provider, service, maxUploadBytes)

	token, err := auth.GenerateToken(secret, ownerID, time.Hour)
	require.NoError(t, err)

	return &harness{service: service, gateway: gateway, token: token}
}

func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	if req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	rec := httptest.NewRecorder()
	h.gateway.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())

	return body
}

func multipartUpload(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func Test_Health(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	for _, path := range []string{"/health", "/api/health"} {
		rec := h.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	}

	rec := h.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reel_http_requests_total")
}

func Test_RequiresAuthentication(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	tests := []struct {
		summary string
		header  string
	}{
		{"missing token", ""},
		{"invalid token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.summary, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
			rec := httptest.NewRecorder()
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			h.gateway.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Error.Code)
		})
	}
}

func Test_Upload(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	id := uuid.New()
	h.service.EXPECT().
		Ingest(mock.Anything, ownerID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, upload video.Upload) (*video.Record, error) {
			assert.Equal(t, "clip.mov", upload.Filename)
			assert.Equal(t, "video/quicktime", upload.MimeType)

			content, err := io.ReadAll(upload.Body)
			assert.NoError(t, err)
			assert.Equal(t, "not really a video", string(content))

			return &video.Record{ID: id, OwnerID: ownerID, OriginalName: upload.Filename, Status: video.StatusUploaded}, nil
		}).
		Once()

	body, contentType := multipartUpload(t, "file", "clip.mov", "video/quicktime", []byte("not really a video"))
	req := httptest.NewRequest(http.MethodPost, "/api/videos/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := h.do(req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var response struct {
		Video video.Record `json:"video"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, id, response.Video.ID)
	assert.Equal(t, video.StatusUploaded, response.Video.Status)
}

func Test_Upload_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary     string
		field       string
		contentType string
		content     []byte
		status      int
		code        string
	}{
		{"non-video mime type", "file", "image/png", []byte("png"), http.StatusBadRequest, "INVALID_INPUT"},
		{"missing file field", "attachment", "video/mp4", []byte("mp4"), http.StatusBadRequest, "INVALID_INPUT"},
		{"exceeds size limit", "file", "video/mp4", bytes.Repeat([]byte("a"), maxUploadBytes+1), http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.summary, func(t *testing.T) {
			t.Parallel()
			// No expectations: the service must never be reached
			h := newHarness(t)

			body, contentType := multipartUpload(t, tt.field, "upload.bin", tt.contentType, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/api/videos/upload", body)
			req.Header.Set("Content-Type", contentType)
			rec := h.do(req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Error.Code)
		})
	}
}

func Test_List(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.service.EXPECT().
		List(mock.Anything, ownerID, 2, 5).
		Return(&video.Page{Page: 2, Limit: 5, Total: 6, Items: []*video.View{{Record: &video.Record{ID: uuid.New()}}}}, nil).
		Once()
	h.service.EXPECT().
		List(mock.Anything, ownerID, 1, video.DefaultPageLimit).
		Return(&video.Page{Page: 1, Limit: video.DefaultPageLimit, Items: []*video.View{}}, nil).
		Once()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/videos?page=2&limit=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var page video.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 6, page.Total)
	assert.Len(t, page.Items, 1)

	rec = h.do(httptest.NewRequest(http.MethodGet, "/api/videos?page=abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_Get(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	found, missing := uuid.New(), uuid.New()
	thumb := "https://objects.test/thumb.jpg"
	h.service.EXPECT().
		Get(mock.Anything, found, ownerID).
		Return(&video.View{Record: &video.Record{ID: found, OwnerID: ownerID}, ThumbnailURL: &thumb}, nil).
		Once()
	h.service.EXPECT().
		Get(mock.Anything, missing, ownerID).
		Return(nil, fmt.Errorf("lookup: %w", video.ErrNotFound)).
		Once()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+found.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"thumbnailUrl":"https://objects.test/thumb.jpg"`)

	rec = h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+missing.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)

	// Not a UUID, so the service is never consulted
	rec = h.do(httptest.NewRequest(http.MethodGet, "/api/videos/not-a-uuid", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_ServiceErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary string
		err     error
		status  int
		code    string
	}{
		{"storage failure", fmt.Errorf("%w: connection refused", video.ErrStorage), http.StatusBadGateway, "STORAGE_ERROR"},
		{"probe failure", fmt.Errorf("%w: no video stream", video.ErrProbe), http.StatusUnprocessableEntity, "PROBE_FAILED"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.summary, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			id := uuid.New()
			h.service.EXPECT().Get(mock.Anything, id, ownerID).Return(nil, tt.err).Once()

			rec := h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+id.String(), nil))
			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "boom")
		})
	}
}

func Test_Stream_Range(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	id := uuid.New()
	firstFour := mock.MatchedBy(func(r *storage.ByteRange) bool {
		return r != nil && r.Start != nil && r.End != nil && *r.Start == 0 && *r.End == 3
	})
	h.service.EXPECT().
		Stream(mock.Anything, id, ownerID, video.VariantOriginal, firstFour, false).
		Return(&video.Stream{
			Body:          io.NopCloser(strings.NewReader("0123")),
			StatusCode:    http.StatusPartialContent,
			ContentType:   "video/mp4",
			ContentLength: 4,
			ContentRange:  "bytes 0-3/16",
			Variant:       video.VariantOriginal,
		}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/videos/"+id.String()+"/stream", nil)
	req.Header.Set("Range", "bytes=0-3")
	rec := h.do(req)

	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "0123", rec.Body.String())
	assert.Equal(t, "video/mp4", rec.Header().Get("Content-Type"))
	assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	assert.Equal(t, "bytes 0-3/16", rec.Header().Get("Content-Range"))
	assert.Equal(t, "bytes", rec.Header().Get("Accept-Ranges"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}

func Test_Stream_TranscodedDownload(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	id := uuid.New()
	h.service.EXPECT().
		Stream(mock.Anything, id, ownerID, video.VariantTranscoded, (*storage.ByteRange)(nil), true).
		Return(&video.Stream{
			Body:               io.NopCloser(strings.NewReader("transcoded")),
			StatusCode:         http.StatusOK,
			ContentType:        "video/mp4",
			ContentLength:      10,
			ContentDisposition: `attachment; filename="clip-720p.mp4"`,
			Variant:            video.VariantTranscoded,
		}, nil).
		Once()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+id.String()+"/stream?variant=transcoded&download=1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "transcoded", rec.Body.String())
	assert.Equal(t, `attachment; filename="clip-720p.mp4"`, rec.Header().Get("Content-Disposition"))
	assert.Empty(t, rec.Header().Get("Content-Range"))
}

func Test_Stream_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary    string
		query      string
		rangeValue string
		serviceErr   error
		status       int
		code         string
		contentRange string
	}{
		{"transcode pending", "?variant=transcoded", "", video.ErrTranscodePending, http.StatusConflict, "TRANSCODE_PENDING", ""},
		{"range not satisfiable", "", "bytes=100-200", fmt.Errorf("stream: %w", &storage.RangeNotSatisfiableError{Size: 16}), http.StatusRequestedRangeNotSatisfiable, "RANGE_NOT_SATISFIABLE", "bytes */16"},
		{"range not satisfiable, size unknown", "", "bytes=100-200", storage.ErrRangeNotSatisfiable, http.StatusRequestedRangeNotSatisfiable, "RANGE_NOT_SATISFIABLE", ""},
		{"malformed range", "", "bytes=5-1", nil, http.StatusBadRequest, "INVALID_INPUT", ""},
		{"multiple ranges", "", "bytes=0-1,4-5", nil, http.StatusBadRequest, "INVALID_INPUT", ""},
		{"unknown variant", "?variant=4k", "", nil, http.StatusBadRequest, "INVALID_INPUT", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.summary, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			id := uuid.New()
			if tt.serviceErr != nil {
				h.service.EXPECT().
					Stream(mock.Anything, id, ownerID, mock.Anything, mock.Anything, false).
					Return(nil, tt.serviceErr).
					Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/videos/"+id.String()+"/stream"+tt.query, nil)
			if tt.rangeValue != "" {
				req.Header.Set("Range", tt.rangeValue)
			}
			rec := h.do(req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.contentRange, rec.Header().Get("Content-Range"))
			assert.Equal(t, tt.code, decodeError(t, rec).Error.Code)
		})
	}
}

func Test_Transcode(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	accepted, busy, unknown := uuid.New(), uuid.New(), uuid.New()
	h.service.EXPECT().
		Transcode(mock.Anything, accepted, ownerID, "480p").
		Return(&video.Record{ID: accepted, Status: video.StatusTranscoding}, nil).
		Once()
	h.service.EXPECT().
		Transcode(mock.Anything, busy, ownerID, "").
		Return(nil, video.ErrTranscodeInProgress).
		Once()
	h.service.EXPECT().
		Transcode(mock.Anything, unknown, ownerID, "9000p").
		Return(nil, fmt.Errorf("%w: unknown preset '9000p'", video.ErrInvalidInput)).
		Once()

	send := func(id uuid.UUID, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/videos/"+id.String()+"/transcode", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return h.do(req)
	}

	rec := send(accepted, `{"preset":"480p"}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"transcoding"`)

	rec = send(busy, `{}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "TRANSCODE_IN_PROGRESS", decodeError(t, rec).Error.Code)

	rec = send(unknown, `{"preset":"9000p"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)

	rec = send(accepted, `{"preset":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(accepted, `{"preset":"`+strings.Repeat("p", 33)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
}

func Test_ListTranscodes(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	queue, err := transcode.New(transcode.Config{MaxConcurrent: 1})
	require.NoError(t, err)
	id := uuid.New()
	task, err := queue.Submit(id.String(), "720p", func(context.Context, transcode.ProgressFunc) error { return nil })
	require.NoError(t, err)

	h.service.EXPECT().Tasks(mock.Anything, id, ownerID).Return([]*transcode.Task{task}, nil).Once()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+id.String()+"/transcodes", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID().String(), tasks[0]["id"])
	assert.Equal(t, "720p", tasks[0]["preset"])
	assert.Equal(t, "WAITING", tasks[0]["status"])
	assert.NotContains(t, tasks[0], "error")
}

func Test_Thumbnail(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	id, bare := uuid.New(), uuid.New()
	h.service.EXPECT().
		ThumbnailURL(mock.Anything, id, ownerID).
		Return("https://objects.test/thumbnails/x.jpg?expires=900", nil).
		Once()
	h.service.EXPECT().
		ThumbnailURL(mock.Anything, bare, ownerID).
		Return("", fmt.Errorf("%w: video has no thumbnail", video.ErrNotFound)).
		Once()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+id.String()+"/thumbnail", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://objects.test/thumbnails/x.jpg?expires=900", rec.Header().Get("Location"))

	rec = h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+bare.String()+"/thumbnail", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_Presigned(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	id := uuid.New()
	h.service.EXPECT().
		PresignedURL(mock.Anything, id, ownerID, video.VariantOriginal, true).
		Return(&video.PresignedURL{Variant: video.VariantOriginal, Download: true, URL: "https://objects.test/a", ExpiresIn: 900}, nil).
		Once()
	h.service.EXPECT().
		PresignedURL(mock.Anything, id, ownerID, video.VariantTranscoded, false).
		Return(&video.PresignedURL{Variant: video.VariantTranscoded, URL: "https://objects.test/b", ExpiresIn: 900}, nil).
		Once()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+id.String()+"/presigned", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"variant":"original","download":true,"url":"https://objects.test/a","expiresIn":900}`, rec.Body.String())

	rec = h.do(httptest.NewRequest(http.MethodGet, "/api/videos/"+id.String()+"/presigned?variant=transcoded&download=false", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"variant":"transcoded","download":false,"url":"https://objects.test/b","expiresIn":900}`, rec.Body.String())
}

func Test_Delete(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	id, missing := uuid.New(), uuid.New()
	h.service.EXPECT().Delete(mock.Anything, id, ownerID).Return(nil).Once()
	h.service.EXPECT().Delete(mock.Anything, missing, ownerID).Return(video.ErrNotFound).Once()

	rec := h.do(httptest.NewRequest(http.MethodDelete, "/api/videos/"+id.String(), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = h.do(httptest.NewRequest(http.MethodDelete, "/api/videos/"+missing.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_CancelTranscode(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	id, taskID, otherTask, finishedTask := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	h.service.EXPECT().CancelTranscode(mock.Anything, id, ownerID, taskID).Return(nil).Once()
	h.service.EXPECT().CancelTranscode(mock.Anything, id, ownerID, otherTask).Return(video.ErrNotFound).Once()
	h.service.EXPECT().CancelTranscode(mock.Anything, id, ownerID, finishedTask).
		Return(fmt.Errorf("%w: transcode task has already concluded", video.ErrInvalidInput)).Once()

	tests := []struct {
		summary string
		target  string
		status  int
	}{
		{"cancelled", "/api/videos/" + id.String() + "/transcodes/" + taskID.String(), http.StatusNoContent},
		{"unknown task", "/api/videos/" + id.String() + "/transcodes/" + otherTask.String(), http.StatusNotFound},
		{"concluded task", "/api/videos/" + id.String() + "/transcodes/" + finishedTask.String(), http.StatusBadRequest},
		{"malformed task id", "/api/videos/" + id.String() + "/transcodes/not-a-uuid", http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := h.do(httptest.NewRequest(http.MethodDelete, tt.target, nil))
		assert.Equal(t, tt.status, rec.Code, tt.summary)
	}
}

func Test_Me(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{"id":"`+ownerID+`"}}`, rec.Body.String())
}
