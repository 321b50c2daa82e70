package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/floostack/transcoder/ffmpeg"
)

// Metadata is the subset of ffprobe output Reel records for each upload.
type Metadata struct {
	Format      string
	DurationSec *float64
	Width       *int
	Height      *int
	VideoCodec  string
	AudioCodec  string
}

type Prober struct {
	config Config
}

func NewProber(config Config) *Prober {
	return &Prober{config: config}
}

// Probe runs ffprobe against the file at the path provided. Files which can not be read,
// or which ffprobe does not recognise as a media container, return ErrProbe.
func (prober *Prober) Probe(ctx context.Context, path string) (*Metadata, error) {
	if info, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProbe, err)
	} else if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrProbe, path)
	}

	metadata, err := ffmpeg.
		New(&ffmpeg.Config{
			FfmpegBinPath:  prober.config.FfmpegBinPath,
			FfprobeBinPath: prober.config.FfprobeBinPath,
		}).
		Input(path).
		WithContext(&ctx).
		GetMetadata()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProbe, parseFfmpegError(err))
	}

	format := metadata.GetFormat()
	if format == nil || format.GetFormatName() == "" {
		return nil, fmt.Errorf("%w: %s is not a recognised media container", ErrProbe, path)
	}

	out := &Metadata{
		Format:      format.GetFormatName(),
		DurationSec: parseDuration(format.GetDuration()),
	}
	for _, stream := range metadata.GetStreams() {
		switch stream.GetCodecType() {
		case "video":
			if out.VideoCodec != "" {
				continue
			}
			out.VideoCodec = stream.GetCodecName()
			out.Width = positiveOrNil(stream.GetWidth())
			out.Height = positiveOrNil(stream.GetHeight())
		case "audio":
			if out.AudioCodec == "" {
				out.AudioCodec = stream.GetCodecName()
			}
		}
	}

	log.Debugf("Probed %s: format=%s duration=%v video=%s audio=%s\n", path, out.Format, deref(out.DurationSec), out.VideoCodec, out.AudioCodec)
	return out, nil
}

// parseDuration converts the ffprobe duration string (seconds, as a decimal)
// in to a float. Missing or unparsable durations ("N/A") yield nil.
func parseDuration(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "N/A" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}

	return &v
}

func positiveOrNil(v int) *int {
	if v <= 0 {
		return nil
	}

	return &v
}

func deref[T any](v *T) any {
	if v == nil {
		return nil
	}

	return *v
}
