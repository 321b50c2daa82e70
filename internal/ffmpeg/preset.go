package ffmpeg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Preset is a named set of encoder parameters. It satisfies the
// transcoder.Options interface, so can be handed directly to the
// underlying ffmpeg command.
type Preset struct {
	VideoCodec    string `yaml:"video_codec" validate:"required"`
	EncoderPreset string `yaml:"encoder_preset"`
	CRF           *int   `yaml:"crf" validate:"omitempty,min=0,max=51"`
	Scale         string `yaml:"scale" validate:"omitempty,scale"`
	AudioCodec    string `yaml:"audio_codec"`
	AudioBitrate  string `yaml:"audio_bitrate"`
	FastStart     bool   `yaml:"faststart"`
}

// DefaultPresets mirrors the single preset Reel ships with when no
// presets are configured.
func DefaultPresets() map[string]Preset {
	crf := 23
	return map[string]Preset{
		"720p": {
			VideoCodec:    "libx264",
			EncoderPreset: "fast",
			CRF:           &crf,
			Scale:         "1280:-2",
			AudioCodec:    "aac",
			AudioBitrate:  "128k",
			FastStart:     true,
		},
	}
}

// GetStrArguments returns the ordered list of ffmpeg output arguments
// for this preset.
func (preset Preset) GetStrArguments() []string {
	args := []string{"-c:v", preset.VideoCodec}
	if preset.EncoderPreset != "" {
		args = append(args, "-preset", preset.EncoderPreset)
	}
	if preset.CRF != nil {
		args = append(args, "-crf", strconv.Itoa(*preset.CRF))
	}
	if preset.Scale != "" {
		args = append(args, "-vf", "scale="+preset.Scale)
	}
	if preset.AudioCodec != "" {
		args = append(args, "-c:a", preset.AudioCodec)
	}
	if preset.AudioBitrate != "" {
		args = append(args, "-b:a", preset.AudioBitrate)
	}
	if preset.FastStart {
		args = append(args, "-movflags", "+faststart")
	}

	return append(args, "-y")
}

// ScalePattern matches ffmpeg scale filter dimensions such as "1280:-2" or "-1:720".
var ScalePattern = regexp.MustCompile(`^-?\d+:-?\d+$`)

// ThumbnailOptions controls how the still image for an upload is grabbed. Timestamps
// are tried in order until a frame is produced.
type ThumbnailOptions struct {
	Timestamps []float64 `yaml:"timestamps" env:"THUMBNAIL_TIMESTAMPS" env-default:"2"`
	Size       string    `yaml:"size" env:"THUMBNAIL_SIZE" env-default:"640x?" validate:"required"`
}

// scaleFilter converts a "WxH" size (where either side may be '?' to preserve
// the aspect ratio) in to an ffmpeg scale expression.
func (opts ThumbnailOptions) scaleFilter() (string, error) {
	w, h, ok := strings.Cut(strings.ToLower(opts.Size), "x")
	if !ok {
		return "", fmt.Errorf("thumbnail size %q must be formatted as WxH", opts.Size)
	}

	conv := func(side string) (string, error) {
		if side == "?" {
			return "-2", nil
		}
		if n, err := strconv.Atoi(side); err != nil || n <= 0 {
			return "", fmt.Errorf("thumbnail size %q has invalid dimension %q", opts.Size, side)
		}

		return side, nil
	}

	sw, err := conv(w)
	if err != nil {
		return "", err
	}
	sh, err := conv(h)
	if err != nil {
		return "", err
	}
	if sw == "-2" && sh == "-2" {
		return "", fmt.Errorf("thumbnail size %q must fix at least one dimension", opts.Size)
	}

	return fmt.Sprintf("scale=%s:%s", sw, sh), nil
}

// frameGrab is the ffmpeg argument set used to extract a single frame.
type frameGrab struct {
	at     float64
	filter string
}

func (grab frameGrab) GetStrArguments() []string {
	return []string{
		"-ss", strconv.FormatFloat(grab.at, 'f', -1, 64),
		"-frames:v", "1",
		"-vf", grab.filter,
		"-q:v", "2",
		"-y",
	}
}
