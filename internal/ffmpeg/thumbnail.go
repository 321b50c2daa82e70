package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/floostack/transcoder/ffmpeg"
)

type Thumbnailer struct {
	config  Config
	options ThumbnailOptions
}

func NewThumbnailer(config Config, options ThumbnailOptions) (*Thumbnailer, error) {
	if _, err := options.scaleFilter(); err != nil {
		return nil, err
	}
	if len(options.Timestamps) == 0 {
		return nil, fmt.Errorf("at least one thumbnail timestamp is required")
	}

	return &Thumbnailer{config: config, options: options}, nil
}

// Extract writes a single JPEG frame from the video at inputPath to outputPath, using the
// first configured timestamp which yields a frame. If no timestamp produces an image
// (e.g. the video is shorter than all of them), ErrThumbnail is returned.
func (thumbnailer *Thumbnailer) Extract(ctx context.Context, inputPath string, outputPath string) error {
	filter, err := thumbnailer.options.scaleFilter()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrThumbnail, err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrThumbnail, err)
	}

	var lastErr error
	for _, at := range thumbnailer.options.Timestamps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrThumbnail, err)
		}

		_ = os.Remove(outputPath)
		_, err := ffmpeg.
			New(&ffmpeg.Config{
				FfmpegBinPath:  thumbnailer.config.FfmpegBinPath,
				FfprobeBinPath: thumbnailer.config.FfprobeBinPath,
			}).
			Input(inputPath).
			Output(outputPath).
			WithContext(&ctx).
			Start(frameGrab{at: at, filter: filter})
		if err != nil {
			lastErr = parseFfmpegError(err)
			log.Debugf("Thumbnail grab at %vs for %s failed: %v\n", at, inputPath, lastErr)
			continue
		}

		if nonEmptyFile(outputPath) {
			log.Debugf("Thumbnail for %s extracted at %vs\n", inputPath, at)
			return nil
		}

		lastErr = fmt.Errorf("no frame produced at %vs", at)
	}

	_ = os.Remove(outputPath)
	return fmt.Errorf("%w: %w", ErrThumbnail, lastErr)
}

func nonEmptyFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
