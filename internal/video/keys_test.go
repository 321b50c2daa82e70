package video_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/video"
	"github.com/stretchr/testify/assert"
)

func Test_SanitizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary  string
		name     string
		expected string
	}{
		{"already safe", "clip.mov", "clip.mov"},
		{"spaces and punctuation", "My Holiday Clip!.mov", "My-Holiday-Clip.mov"},
		{"repeated separators collapse", "a  --  b.mp4", "a-b.mp4"},
		{"underscores kept", "take_2.mkv", "take_2.mkv"},
		{"directories stripped", "../../etc/passwd.mp4", "passwd.mp4"},
		{"windows directories stripped", `C:\Users\me\clip.avi`, "clip.avi"},
		{"no extension", "clip", "clip"},
		{"extension keeps its dot", "clip-720p.mp4", "clip-720p.mp4"},
		{"unsafe extension characters stripped", "clip.m o!v", "clip.mov"},
		{"trailing dot dropped", "clip.", "clip"},
		{"unusable extension dropped", "clip.!!", "clip"},
		{"nothing usable", "!!!.mov", "fallback"},
		{"empty", "", "fallback"},
		{"unicode replaced", "café vidéo.mp4", "caf-vid-o.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			assert.Equal(t, tt.expected, video.SanitizeName(tt.name, "fallback"))
		})
	}
}

func Test_JoinKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "raw-videos/abc/clip.mov", video.JoinKey("raw-videos/", "/abc/", "clip.mov"))
	assert.Equal(t, "abc/clip.mov", video.JoinKey("", "abc", "", "clip.mov"))
	assert.Equal(t, "", video.JoinKey())
}

func Test_KeyLayout(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c1a4e-9d1b-4f3a-8a52-0c3c5c7d9e10")
	layout := video.KeyLayout{RawPrefix: "raw-videos/", TranscodedPrefix: "transcoded-videos/", ThumbnailPrefix: "thumbnails/"}

	assert.Equal(t, "raw-videos/6f1c1a4e-9d1b-4f3a-8a52-0c3c5c7d9e10/clip.mov", layout.RawKey(id, video.StoredName(id, "clip.mov")))
	assert.Equal(t, "thumbnails/6f1c1a4e-9d1b-4f3a-8a52-0c3c5c7d9e10/6f1c1a4e-9d1b-4f3a-8a52-0c3c5c7d9e10.jpg", layout.ThumbnailKey(id))
	assert.Equal(t, "transcoded-videos/6f1c1a4e-9d1b-4f3a-8a52-0c3c5c7d9e10/clip-720p.mp4", layout.TranscodedKey(id, video.TranscodedName(id, "clip.mov", "720p")))
}

func Test_StoredName_Fallbacks(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c1a4e-9d1b-4f3a-8a52-0c3c5c7d9e10")
	assert.Equal(t, "video-6f1c1a4e-9d1b-4f3a-8a52-0c3c5c7d9e10.webm", video.StoredName(id, "???.webm"))
	assert.Equal(t, "video-6f1c1a4e-9d1b-4f3a-8a52-0c3c5c7d9e10.mp4", video.StoredName(id, ""))
	assert.Equal(t, "video-480p.mp4", video.TranscodedName(id, "", "480p"))
	assert.Equal(t, "My-Clip-720p.mp4", video.TranscodedName(id, "My Clip.mov", "720p"))
}
