package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/floostack/transcoder"
	"github.com/floostack/transcoder/ffmpeg"
)

type Progress struct {
	FramesProcessed string
	CurrentTime     string
	CurrentBitrate  string
	Progress        float64
	Speed           string
}

type Transcoder struct {
	config Config
	prober *Prober
}

func NewTranscoder(config Config) *Transcoder {
	return &Transcoder{config: config, prober: NewProber(config)}
}

// Transcode re-encodes the input file to outputPath using the preset given, blocking
// until ffmpeg exits. Cancelling the context kills the running ffmpeg process.
//
// The output is probed once ffmpeg has exited; output which is missing, empty or
// unreadable is removed and reported as ErrTranscode, so callers never see a
// partially written file.
func (t *Transcoder) Transcode(ctx context.Context, inputPath string, outputPath string, preset transcoder.Options, onProgress func(*Progress)) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrTranscode, err)
	}

	progressChannel, err := ffmpeg.
		New(&ffmpeg.Config{
			ProgressEnabled: true,
			FfmpegBinPath:   t.config.FfmpegBinPath,
			FfprobeBinPath:  t.config.FfprobeBinPath,
		}).
		Input(inputPath).
		Output(outputPath).
		WithContext(&ctx).
		Start(preset)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTranscode, parseFfmpegError(err))
	}

	for prog := range progressChannel {
		if onProgress == nil {
			continue
		}

		onProgress(&Progress{
			FramesProcessed: prog.GetFramesProcessed(),
			CurrentTime:     prog.GetCurrentTime(),
			CurrentBitrate:  prog.GetCurrentBitrate(),
			Progress:        prog.GetProgress(),
			Speed:           prog.GetSpeed(),
		})
	}
	log.Debugf("FFmpeg command for %s has closed progress channel\n", outputPath)

	if err := ctx.Err(); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("%w: %w", ErrTranscode, err)
	}

	if !nonEmptyFile(outputPath) {
		_ = os.Remove(outputPath)
		return fmt.Errorf("%w: ffmpeg produced no output at %s", ErrTranscode, outputPath)
	}
	if _, err := t.prober.Probe(ctx, outputPath); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("%w: output failed validation: %w", ErrTranscode, err)
	}

	return nil
}
