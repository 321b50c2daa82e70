package ffmpeg

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/hbomb79/Reel/pkg/logger"
)

var (
	log = logger.Get("FFmpeg")

	ErrProbe     = errors.New("media probe failed")
	ErrThumbnail = errors.New("thumbnail extraction failed")
	ErrTranscode = errors.New("transcode failed")
)

// Config describes where the ffmpeg toolchain lives on the host.
type Config struct {
	FfmpegBinPath  string `yaml:"ffmpeg_binary_path" env:"FFMPEG_BINARY_PATH" env-default:"/usr/bin/ffmpeg"`
	FfprobeBinPath string `yaml:"ffprobe_binary_path" env:"FFPROBE_BINARY_PATH" env-default:"/usr/bin/ffprobe"`
}

var ffmpegMessageMatcher = regexp.MustCompile(`(?s)message: ({.*})`)

// parseFfmpegError picks the relevant message out of the (very large) error
// the transcoder library returns, which embeds the ffprobe/ffmpeg JSON error
// after the build information.
func parseFfmpegError(err error) error {
	groups := ffmpegMessageMatcher.FindStringSubmatch(err.Error())
	if len(groups) < 2 {
		return err
	}

	var out struct {
		Error struct {
			String string `json:"string"`
		} `json:"error"`
	}
	if jsonErr := json.Unmarshal([]byte(groups[1]), &out); jsonErr != nil || out.Error.String == "" {
		return errors.New(groups[1])
	}

	return errors.New(out.Error.String)
}
