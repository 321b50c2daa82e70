package transcode

import (
	"time"

	"github.com/hbomb79/Reel/internal/ffmpeg"
)

type Config struct {
	Presets       map[string]ffmpeg.Preset `yaml:"presets" validate:"dive,keys,required,endkeys"`
	DefaultPreset string                   `yaml:"default_preset" env:"TRANSCODE_DEFAULT_PRESET" env-default:"720p"`
	MaxConcurrent int                      `yaml:"max_concurrent" env:"TRANSCODE_MAX_CONCURRENT" env-default:"2" validate:"min=1"`
	Timeout       time.Duration            `yaml:"timeout" env:"TRANSCODE_TIMEOUT" env-default:"30m"`
	// HistorySize is the number of finished tasks retained for observability.
	HistorySize int `yaml:"history_size" env:"TRANSCODE_HISTORY_SIZE" env-default:"100" validate:"min=0"`
}
