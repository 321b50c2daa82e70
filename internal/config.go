package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Reel/internal/api"
	"github.com/hbomb79/Reel/internal/api/auth"
	"github.com/hbomb79/Reel/internal/cache"
	"github.com/hbomb79/Reel/internal/database"
	"github.com/hbomb79/Reel/internal/ffmpeg"
	"github.com/hbomb79/Reel/internal/storage"
	"github.com/hbomb79/Reel/internal/transcode"
	"github.com/hbomb79/Reel/internal/video"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	bytesPerMegabyte  = 1 << 20
	defaultPresetName = "720p"
)

// ReelConfig is the struct used to contain the various user config supplied
// by file and/or environment variables.
type ReelConfig struct {
	LogLevel  string                  `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	Rest      api.RestConfig          `yaml:"rest"`
	Auth      auth.Config             `yaml:"auth"`
	Database  database.DatabaseConfig `yaml:"database"`
	Storage   storage.Config          `yaml:"storage"`
	Upload    UploadConfig            `yaml:"upload"`
	Ffmpeg    ffmpeg.Config           `yaml:"ffmpeg"`
	Transcode transcode.Config        `yaml:"transcode"`
	Thumbnail ffmpeg.ThumbnailOptions `yaml:"thumbnail"`
	Cache     cache.Config            `yaml:"cache"`
	Services  ServiceConfig           `yaml:"docker_services"`
}

type UploadConfig struct {
	MaxSizeMB        int64  `yaml:"max_size_mb" env:"LIMIT_FILE_SIZE_MB" env-default:"512" validate:"min=1"`
	TempDir          string `yaml:"temp_dir" env:"UPLOAD_TEMP_DIR"`
	RequireThumbnail bool   `yaml:"require_thumbnail" env:"UPLOAD_REQUIRE_THUMBNAIL" env-default:"false"`
}

// ServiceConfig is used to enable/disable the internal initialisation of
// supporting services for Reel. These are intended for local development
// only, and so are disabled by default.
type ServiceConfig struct {
	EnablePostgres bool `yaml:"enable_postgres" env:"SERVICE_ENABLE_POSTGRES" env-default:"false"`
	EnableMinio    bool `yaml:"enable_minio" env:"SERVICE_ENABLE_MINIO" env-default:"false"`
	EnableRedis    bool `yaml:"enable_redis" env:"SERVICE_ENABLE_REDIS" env-default:"false"`
}

// LoadConfig reads the YAML configuration at the path given, overlaid with the
// environment. A missing file is not an error: in that case the configuration
// is read from the environment alone. The result is validated before returning.
func LoadConfig(configPath string) (*ReelConfig, error) {
	config := &ReelConfig{}
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to load configuration from environment: %w", err)
		}
	} else {
		return nil, fmt.Errorf("failed to stat configuration file %s: %w", configPath, err)
	}

	if len(config.Transcode.Presets) == 0 {
		config.Transcode.Presets = ffmpeg.DefaultPresets()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against the constraints declared on each
// field, as well as those which span multiple sections.
func (config *ReelConfig) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("scale", validateScale); err != nil {
		return err
	}

	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	defaultPreset := video.NormalisePreset(config.Transcode.DefaultPreset, defaultPresetName)
	if _, ok := config.Transcode.Presets[defaultPreset]; !ok {
		return fmt.Errorf("invalid configuration: default preset %q is not one of the configured presets", config.Transcode.DefaultPreset)
	}
	for name, preset := range config.Transcode.Presets {
		if name != video.NormalisePreset(name, "") {
			return fmt.Errorf("invalid configuration: preset name %q must be lower-case without surrounding whitespace", name)
		}
		if err := validate.Struct(preset); err != nil {
			return fmt.Errorf("invalid configuration: preset %q: %w", name, err)
		}
	}
	if len(config.Thumbnail.Timestamps) == 0 {
		return errors.New("invalid configuration: at least one thumbnail timestamp is required")
	}

	return nil
}

func (config *ReelConfig) MaxUploadBytes() int64 {
	return config.Upload.MaxSizeMB * bytesPerMegabyte
}

// VideoConfig derives the configuration for the video pipeline from the
// relevant sections of the Reel config.
func (config *ReelConfig) VideoConfig() video.Config {
	return video.Config{
		Keys: video.KeyLayout{
			RawPrefix:        config.Storage.RawPrefix,
			TranscodedPrefix: config.Storage.TranscodedPrefix,
			ThumbnailPrefix:  config.Storage.ThumbnailPrefix,
		},
		PresignTTL:       config.Storage.PresignedTTL(),
		TempDir:          config.Upload.TempDir,
		RequireThumbnail: config.Upload.RequireThumbnail,
		Presets:          config.Transcode.Presets,
		DefaultPreset:    video.NormalisePreset(config.Transcode.DefaultPreset, defaultPresetName),
		CacheTTL:         config.Cache.TTL,
	}
}

func validateScale(fl validator.FieldLevel) bool {
	return ffmpeg.ScalePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
