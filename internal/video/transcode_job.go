package video

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hbomb79/Reel/internal/ffmpeg"
	"github.com/hbomb79/Reel/internal/metrics"
	"github.com/hbomb79/Reel/internal/transcode"
	"github.com/hbomb79/Reel/pkg/logger"
)

// transcodeJob carries everything the background encode of a single video needs. It
// runs on the transcode queue, outside of the request which started it.
type transcodeJob struct {
	service     *Service
	record      *Record
	presetName  string
	preset      ffmpeg.Preset
	sourceKey   string
	sourceName  string
	outputName  string
	previousKey *string
}

// run downloads the original, encodes it and uploads the result. The record is only
// moved to 'ready' once the upload has completed. Any failure moves it to 'failed'.
func (job *transcodeJob) run(ctx context.Context, progress transcode.ProgressFunc) error {
	started := time.Now()
	outputKey := job.service.config.Keys.TranscodedKey(job.record.ID, job.outputName)

	err := job.encodeAndUpload(ctx, outputKey, progress)
	finalCtx := context.WithoutCancel(ctx)
	defer job.service.invalidate(finalCtx, job.record.OwnerID, job.record.ID)

	if err != nil {
		job.fail(finalCtx, err)
		job.removePrevious(finalCtx, outputKey, false)
		return err
	}
	job.removePrevious(finalCtx, outputKey, true)

	_, err = job.service.store.Update(finalCtx, job.record.ID, job.record.OwnerID, Update{
		Status:             ptr(StatusReady),
		TranscodedKey:      &outputKey,
		TranscodedFilename: &job.outputName,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidTransition) {
			// The video was deleted, or has moved on, while the encode was running
			log.Emit(logger.WARNING, "Video %s no longer awaits this transcode, discarding %s: %v\n", job.record.ID, outputKey, err)
			job.service.deleteObject(finalCtx, outputKey)
		}
		metrics.TranscodesTotal.WithLabelValues(job.presetName, "failed").Inc()
		return fmt.Errorf("failed to mark %s as ready: %w", job.record.ID, err)
	}

	metrics.TranscodesTotal.WithLabelValues(job.presetName, "success").Inc()
	metrics.TranscodeDuration.WithLabelValues(job.presetName).Observe(time.Since(started).Seconds())
	log.Emit(logger.SUCCESS, "Transcoded %s to %s (%s)\n", job.record.ID, job.presetName, outputKey)
	return nil
}

func (job *transcodeJob) encodeAndUpload(ctx context.Context, outputKey string, progress transcode.ProgressFunc) error {
	tempDir, err := os.MkdirTemp(job.service.config.TempDir, "reel-transcode-")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp dir: %w", ErrTranscode, err)
	}
	defer removeTempDir(tempDir)

	inputPath := filepath.Join(tempDir, "source-"+job.sourceName)
	if err := job.download(ctx, inputPath); err != nil {
		return err
	}

	outputPath := filepath.Join(tempDir, job.outputName)
	onProgress := func(p *ffmpeg.Progress) {
		if progress != nil {
			progress(p.Progress)
		}
	}
	if err := job.service.transcoder.Transcode(ctx, inputPath, outputPath, job.preset, onProgress); err != nil {
		return err
	}

	return job.service.putFile(ctx, outputKey, outputPath, "video/mp4")
}

func (job *transcodeJob) download(ctx context.Context, path string) error {
	obj, err := job.service.objects.Get(ctx, job.sourceKey, nil)
	if err != nil {
		return wrapObjectError("download", job.sourceKey, err)
	}
	defer obj.Body.Close()

	if _, err := writeFile(path, obj.Body); err != nil {
		return fmt.Errorf("%w: failed to download %s: %w", ErrStorage, job.sourceKey, err)
	}

	return nil
}

// fail moves the record to 'failed'. It is a no-op if the record has since been deleted.
func (job *transcodeJob) fail(ctx context.Context, cause error) {
	log.Emit(logger.ERROR, "Transcode of %s to %s failed: %v\n", job.record.ID, job.presetName, cause)
	metrics.TranscodesTotal.WithLabelValues(job.presetName, "failed").Inc()

	_, err := job.service.store.Update(ctx, job.record.ID, job.record.OwnerID, Update{
		Status:          ptr(StatusFailed),
		ClearTranscoded: true,
	})
	switch {
	case err == nil, errors.Is(err, ErrNotFound):
	case errors.Is(err, ErrInvalidTransition):
		log.Emit(logger.WARNING, "Not marking %s as failed: %v\n", job.record.ID, err)
	default:
		log.Emit(logger.ERROR, "Failed to mark %s as failed: %v\n", job.record.ID, err)
	}
}

// removePrevious deletes the variant produced by an earlier transcode, which the
// record stopped referencing when this transcode began. When the new upload
// succeeded under the same key it has already replaced the previous object.
func (job *transcodeJob) removePrevious(ctx context.Context, outputKey string, uploaded bool) {
	if job.previousKey == nil || *job.previousKey == "" {
		return
	}
	if uploaded && *job.previousKey == outputKey {
		return
	}

	job.service.deleteObject(ctx, *job.previousKey)
}
