package video

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/floostack/transcoder"
	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/ffmpeg"
	"github.com/hbomb79/Reel/internal/metrics"
	"github.com/hbomb79/Reel/internal/storage"
	"github.com/hbomb79/Reel/internal/transcode"
	"github.com/hbomb79/Reel/pkg/logger"
)

var log = logger.Get("VideoServ")

const thumbnailContentType = "image/jpeg"

type (
	Prober interface {
		Probe(ctx context.Context, path string) (*ffmpeg.Metadata, error)
	}

	Thumbnailer interface {
		Extract(ctx context.Context, inputPath string, outputPath string) error
	}

	Transcoder interface {
		Transcode(ctx context.Context, inputPath string, outputPath string, opts transcoder.Options, onProgress func(*ffmpeg.Progress)) error
	}

	ObjectStore interface {
		Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
		Get(ctx context.Context, key string, byteRange *storage.ByteRange) (*storage.Object, error)
		Delete(ctx context.Context, key string) error
		SignURL(ctx context.Context, key string, opts storage.SignOptions) (string, error)
	}

	MetadataStore interface {
		Put(ctx context.Context, record *Record) error
		Get(ctx context.Context, id uuid.UUID, ownerID string) (*Record, error)
		ListByOwner(ctx context.Context, ownerID string) ([]*Record, error)
		Update(ctx context.Context, id uuid.UUID, ownerID string, update Update) (*Record, error)
		BeginTranscode(ctx context.Context, id uuid.UUID, ownerID string) (*Record, *string, error)
		Delete(ctx context.Context, id uuid.UUID, ownerID string) error
		FailStaleTranscodes(ctx context.Context) (int64, error)
	}

	TaskQueue interface {
		Submit(key string, label string, job transcode.Job) (*transcode.Task, error)
		Task(id uuid.UUID) *transcode.Task
		CancelTask(id uuid.UUID) (transcode.TaskStatus, error)
		CancelTasksForKey(key string)
		TasksForKey(key string) []*transcode.Task
	}

	Cache interface {
		GetJSON(ctx context.Context, key string, dest any) (bool, error)
		SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
		Delete(ctx context.Context, keys ...string) error
	}

	Config struct {
		Keys             KeyLayout
		PresignTTL       time.Duration
		TempDir          string
		RequireThumbnail bool
		Presets          map[string]ffmpeg.Preset
		DefaultPreset    string
		CacheTTL         time.Duration
	}

	// Upload is a single file received from a client.
	Upload struct {
		Filename string
		MimeType string
		Body     io.Reader
	}

	// Stream is an open (possibly partial) read of a video variant, along with the
	// header values required to relay it. The caller must close Body.
	Stream struct {
		Body               io.ReadCloser
		StatusCode         int
		ContentType        string
		ContentLength      int64
		ContentRange       string
		ContentDisposition string
		Variant            Variant
	}

	PresignedURL struct {
		Variant   Variant `json:"variant"`
		Download  bool    `json:"download"`
		URL       string  `json:"url"`
		ExpiresIn int     `json:"expiresIn"`
	}

	// Service is the video pipeline orchestrator. It owns the status machine of each
	// record and coordinates the media tools, object store and metadata store.
	Service struct {
		config      Config
		store       MetadataStore
		objects     ObjectStore
		prober      Prober
		thumbnailer Thumbnailer
		transcoder  Transcoder
		tasks       TaskQueue
		cache       Cache
	}
)

func NewService(config Config, store MetadataStore, objects ObjectStore, prober Prober, thumbnailer Thumbnailer, transcoder Transcoder, tasks TaskQueue, cache Cache) *Service {
	if config.DefaultPreset == "" {
		config.DefaultPreset = "720p"
	}

	return &Service{
		config:      config,
		store:       store,
		objects:     objects,
		prober:      prober,
		thumbnailer: thumbnailer,
		transcoder:  transcoder,
		tasks:       tasks,
		cache:       cache,
	}
}

// RecoverStaleTranscodes fails any records left in the transcoding status by a
// previous process. It must be called before any transcodes are accepted.
func (service *Service) RecoverStaleTranscodes(ctx context.Context) error {
	n, err := service.store.FailStaleTranscodes(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Emit(logger.WARNING, "Marked %d interrupted transcode(s) as failed\n", n)
	}

	return nil
}

// Ingest accepts an upload for the owner: the file is written to a scoped temporary
// directory, probed and thumbnailed, before the original and thumbnail are pushed to
// the object store and the record is created with status 'uploaded'.
func (service *Service) Ingest(ctx context.Context, ownerID string, upload Upload) (*Record, error) {
	if upload.Body == nil {
		return nil, fmt.Errorf("%w: no file uploaded", ErrInvalidInput)
	}

	record, err := service.ingest(ctx, ownerID, upload)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	metrics.UploadedBytes.Add(float64(record.SizeBytes))
	log.Emit(logger.NEW, "Ingested video %s (%s, %d bytes) for owner %s\n", record.ID, record.OriginalName, record.SizeBytes, ownerID)
	return record, nil
}

func (service *Service) ingest(ctx context.Context, ownerID string, upload Upload) (*Record, error) {
	id := uuid.New()
	storedName := StoredName(id, upload.Filename)

	tempDir, err := os.MkdirTemp(service.config.TempDir, "reel-upload-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir for upload: %w", err)
	}
	defer removeTempDir(tempDir)

	videoPath := filepath.Join(tempDir, storedName)
	size, err := writeFile(videoPath, upload.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to write upload to disk: %w", err)
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: uploaded file is empty", ErrInvalidInput)
	}

	meta, err := service.prober.Probe(ctx, videoPath)
	if err != nil {
		return nil, err
	}

	var thumbPath string
	candidate := filepath.Join(tempDir, id.String()+".jpg")
	if err := service.thumbnailer.Extract(ctx, videoPath, candidate); err != nil {
		if service.config.RequireThumbnail {
			return nil, err
		}
		log.Emit(logger.WARNING, "Continuing upload of %s without a thumbnail: %v\n", id, err)
	} else {
		thumbPath = candidate
	}

	contentType := upload.MimeType
	if contentType == "" {
		contentType = mime.TypeByExtension(extOrDefault(storedName))
	}
	if contentType == "" {
		contentType = "video/mp4"
	}

	format := meta.Format
	if format == "" {
		format = contentType
	}

	now := time.Now().UTC()
	record := &Record{
		ID:           id,
		OwnerID:      ownerID,
		OriginalName: upload.Filename,
		MimeType:     contentType,
		Format:       format,
		SizeBytes:    size,
		DurationSec:  meta.DurationSec,
		Width:        meta.Width,
		Height:       meta.Height,
		Status:       StatusUploaded,
		S3Key:        service.config.Keys.RawKey(id, storedName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	uploaded := make([]string, 0, 2)
	rollback := func() {
		for _, key := range uploaded {
			service.deleteObject(context.WithoutCancel(ctx), key)
		}
	}

	if thumbPath != "" {
		thumbKey := service.config.Keys.ThumbnailKey(id)
		if err := service.putFile(ctx, thumbKey, thumbPath, thumbnailContentType); err != nil {
			return nil, err
		}
		uploaded = append(uploaded, thumbKey)
		record.ThumbKey = &thumbKey
	}

	if err := service.putFile(ctx, record.S3Key, videoPath, contentType); err != nil {
		rollback()
		return nil, err
	}
	uploaded = append(uploaded, record.S3Key)

	if err := service.store.Put(ctx, record); err != nil {
		rollback()
		return nil, err
	}

	return record, nil
}

// List returns the requested page of the owners videos, most recent first, with
// thumbnail URLs signed for each item.
func (service *Service) List(ctx context.Context, ownerID string, page int, limit int) (*Page, error) {
	page, limit = ClampPage(page, limit)

	records, err := service.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	total := len(records)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	items := make([]*View, 0, end-start)
	for _, record := range records[start:end] {
		items = append(items, service.view(ctx, record))
	}

	return &Page{Page: page, Limit: limit, Total: total, Items: items}, nil
}

// Get returns the owners record, with its thumbnail URL signed. Results are served
// from the response cache when possible.
func (service *Service) Get(ctx context.Context, id uuid.UUID, ownerID string) (*View, error) {
	key := metadataCacheKey(ownerID, id)

	var cached View
	if service.cacheGet(ctx, key, &cached) && cached.Record != nil {
		return &cached, nil
	}

	record, err := service.store.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	view := service.view(ctx, record)
	service.cacheSet(ctx, key, view)
	return view, nil
}

// ResolveVariant returns the storage key and download filename for the variant
// of the record requested.
func ResolveVariant(record *Record, variant Variant) (string, string, error) {
	switch variant {
	case VariantTranscoded:
		if record.TranscodedKey == nil || *record.TranscodedKey == "" {
			return "", "", fmt.Errorf("%w: %s", ErrTranscodePending, record.ID)
		}

		filename := ""
		if record.TranscodedFilename != nil {
			filename = *record.TranscodedFilename
		}
		if filename == "" {
			filename = TranscodedName(record.ID, record.OriginalName, "720p")
		}

		return *record.TranscodedKey, filename, nil
	case VariantOriginal, "":
		if record.S3Key == "" {
			return "", "", fmt.Errorf("%w: original video missing for %s", ErrNotFound, record.ID)
		}

		return record.S3Key, SanitizeName(record.OriginalName, record.ID.String()+extOrDefault(record.OriginalName)), nil
	}

	return "", "", fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, variant)
}

// Stream opens a read of the variant requested. The status code is 206 when the
// store served part of the object for the byte range given.
func (service *Service) Stream(ctx context.Context, id uuid.UUID, ownerID string, variant Variant, byteRange *storage.ByteRange, download bool) (*Stream, error) {
	record, err := service.store.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	key, filename, err := ResolveVariant(record, variant)
	if err != nil {
		return nil, err
	}

	obj, err := service.objects.Get(ctx, key, byteRange)
	if err != nil {
		return nil, wrapObjectError("stream", key, err)
	}

	stream := &Stream{
		Body:          obj.Body,
		StatusCode:    http.StatusOK,
		ContentType:   obj.ContentType,
		ContentLength: obj.ContentLength,
		ContentRange:  obj.ContentRange,
		Variant:       variant,
	}
	if obj.Partial {
		stream.StatusCode = http.StatusPartialContent
	}
	if stream.ContentType == "" {
		stream.ContentType = record.MimeType
	}
	if stream.ContentType == "" {
		stream.ContentType = "application/octet-stream"
	}
	if download {
		stream.ContentDisposition = storage.ContentDisposition(true, filename)
	}

	return stream, nil
}

// Transcode validates the preset, moves the record to 'transcoding' and queues the
// encode. It returns as soon as the status has changed; the outcome of the encode is
// only observable through later reads of the record.
func (service *Service) Transcode(ctx context.Context, id uuid.UUID, ownerID string, presetName string) (*Record, error) {
	presetName = NormalisePreset(presetName, service.config.DefaultPreset)
	preset, ok := service.config.Presets[presetName]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidInput, presetName)
	}

	current, err := service.store.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	sourceKey, sourceName, err := ResolveVariant(current, VariantOriginal)
	if err != nil {
		return nil, err
	}

	record, previousKey, err := service.store.BeginTranscode(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	service.invalidate(ctx, ownerID, id)

	job := &transcodeJob{
		service:     service,
		record:      record,
		presetName:  presetName,
		preset:      preset,
		sourceKey:   sourceKey,
		sourceName:  sourceName,
		outputName:  TranscodedName(id, record.OriginalName, presetName),
		previousKey: previousKey,
	}
	if _, err := service.tasks.Submit(id.String(), presetName, job.run); err != nil {
		finalCtx := context.WithoutCancel(ctx)
		job.removePrevious(finalCtx, "", false)
		if errors.Is(err, transcode.ErrTaskActive) {
			// The task already waiting for this video owns the record status
			return nil, fmt.Errorf("%w: %w", ErrTranscodeInProgress, err)
		}

		log.Emit(logger.ERROR, "Failed to queue transcode for %s: %v\n", id, err)
		job.fail(finalCtx, err)
		return nil, err
	}

	log.Emit(logger.NEW, "Queued %s transcode of %s\n", presetName, id)
	return record, nil
}

// PresignedURL signs a direct read URL for the variant requested.
func (service *Service) PresignedURL(ctx context.Context, id uuid.UUID, ownerID string, variant Variant, download bool) (*PresignedURL, error) {
	cacheKey := presignedCacheKey(ownerID, id, variant, download)

	var cached PresignedURL
	if service.cacheGet(ctx, cacheKey, &cached) && cached.URL != "" {
		return &cached, nil
	}

	record, err := service.store.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	key, filename, err := ResolveVariant(record, variant)
	if err != nil {
		return nil, err
	}

	contentType := "video/mp4"
	if variant != VariantTranscoded {
		contentType = record.MimeType
		if contentType == "" {
			contentType = mime.TypeByExtension(extOrDefault(filename))
		}
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	url, err := service.objects.SignURL(ctx, key, storage.SignOptions{
		Method:      storage.SignGet,
		TTL:         service.config.PresignTTL,
		Download:    download,
		Filename:    filename,
		ContentType: contentType,
	})
	if err != nil {
		return nil, wrapObjectError("presign", key, err)
	}

	signed := &PresignedURL{
		Variant:   variant,
		Download:  download,
		URL:       url,
		ExpiresIn: int(service.config.PresignTTL.Seconds()),
	}
	service.cacheSet(ctx, cacheKey, signed)
	return signed, nil
}

// ThumbnailURL signs a read URL for the videos thumbnail. ErrNotFound is returned
// if the video has no thumbnail.
func (service *Service) ThumbnailURL(ctx context.Context, id uuid.UUID, ownerID string) (string, error) {
	record, err := service.store.Get(ctx, id, ownerID)
	if err != nil {
		return "", err
	}
	if record.ThumbKey == nil || *record.ThumbKey == "" {
		return "", fmt.Errorf("%w: thumbnail not generated for %s", ErrNotFound, id)
	}

	url, err := service.signThumbnail(ctx, *record.ThumbKey)
	if err != nil {
		return "", wrapObjectError("presign", *record.ThumbKey, err)
	}

	return url, nil
}

// Delete removes the record, after cancelling any transcodes for it and making a
// best-effort attempt to remove its objects. Object deletion failures are logged
// and otherwise ignored.
func (service *Service) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	record, err := service.store.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}

	service.tasks.CancelTasksForKey(id.String())

	for _, key := range []*string{&record.S3Key, record.TranscodedKey, record.ThumbKey} {
		if key != nil && *key != "" {
			service.deleteObject(ctx, *key)
		}
	}

	if err := service.store.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	service.invalidate(ctx, ownerID, id)
	log.Emit(logger.REMOVE, "Deleted video %s for owner %s\n", id, ownerID)
	return nil
}

// Tasks returns the transcode tasks (active and recently concluded) for the video.
func (service *Service) Tasks(ctx context.Context, id uuid.UUID, ownerID string) ([]*transcode.Task, error) {
	if _, err := service.store.Get(ctx, id, ownerID); err != nil {
		return nil, err
	}

	return service.tasks.TasksForKey(id.String()), nil
}

// CancelTranscode cancels one of the video's transcode tasks. A working encode is
// interrupted and moves the record to 'failed' as it concludes; a task cancelled
// before it started never will, so the record is failed here instead.
func (service *Service) CancelTranscode(ctx context.Context, id uuid.UUID, ownerID string, taskID uuid.UUID) error {
	if _, err := service.store.Get(ctx, id, ownerID); err != nil {
		return err
	}

	task := service.tasks.Task(taskID)
	if task == nil || task.Key() != id.String() {
		return fmt.Errorf("%w: transcode task %s", ErrNotFound, taskID)
	}

	previous, err := service.tasks.CancelTask(taskID)
	if err != nil {
		return fmt.Errorf("%w: transcode task %s: %w", ErrNotFound, taskID, err)
	}

	switch previous {
	case transcode.WAITING:
		job := &transcodeJob{service: service, record: &Record{ID: id, OwnerID: ownerID}, presetName: task.Label()}
		job.fail(ctx, context.Canceled)
		service.invalidate(ctx, ownerID, id)
	case transcode.WORKING:
	default:
		return fmt.Errorf("%w: transcode task %s has already concluded", ErrInvalidInput, taskID)
	}

	log.Emit(logger.STOP, "Cancelled %s transcode of %s\n", task.Label(), id)
	return nil
}

// ClampPage normalises paging parameters: pages start at 1, and the limit
// defaults to 10 and may not exceed 50.
func ClampPage(page int, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	return page, min(limit, MaxPageLimit)
}

func (service *Service) view(ctx context.Context, record *Record) *View {
	view := &View{Record: record}
	if record.ThumbKey == nil || *record.ThumbKey == "" {
		return view
	}

	url, err := service.signThumbnail(ctx, *record.ThumbKey)
	if err != nil {
		log.Emit(logger.WARNING, "Failed to sign thumbnail for %s: %v\n", record.ID, err)
		return view
	}

	view.ThumbnailURL = &url
	return view
}

func (service *Service) signThumbnail(ctx context.Context, key string) (string, error) {
	return service.objects.SignURL(ctx, key, storage.SignOptions{
		Method:      storage.SignGet,
		TTL:         service.config.PresignTTL,
		ContentType: thumbnailContentType,
	})
}

func (service *Service) putFile(ctx context.Context, key string, path string, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for upload: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s for upload: %w", path, err)
	}

	if err := service.objects.Put(ctx, key, f, info.Size(), contentType); err != nil {
		return wrapObjectError("put", key, err)
	}

	return nil
}

func (service *Service) deleteObject(ctx context.Context, key string) {
	if err := service.objects.Delete(ctx, key); err != nil {
		log.Emit(logger.WARNING, "Failed to delete object %s: %v\n", key, err)
	}
}

func writeFile(path string, body io.Reader) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	return n, err
}

func removeTempDir(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		log.Emit(logger.WARNING, "Failed to remove temp dir %s: %v\n", dir, err)
	}
}
