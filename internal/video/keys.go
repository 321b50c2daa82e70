package video

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9-_]+`)
	repeatedDashes  = regexp.MustCompile(`-+`)
)

// KeyLayout describes where each kind of object lives in the bucket.
type KeyLayout struct {
	RawPrefix        string
	TranscodedPrefix string
	ThumbnailPrefix  string
}

// SanitizeName makes a filename safe for use in a storage key, replacing runs of
// anything other than letters, digits, dashes and underscores in the base name with
// a single dash. The extension is preserved. When nothing usable remains the
// fallback is returned instead.
func SanitizeName(name string, fallback string) string {
	if name == "" {
		return fallback
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(path.Base(strings.ReplaceAll(name, `\`, "/")), ext)
	base = unsafeNameChars.ReplaceAllString(base, "-")
	base = repeatedDashes.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		return fallback
	}

	return base + sanitizeExt(ext)
}

// sanitizeExt strips unsafe characters from the extension, keeping the leading
// dot. An extension with nothing usable left is dropped.
func sanitizeExt(ext string) string {
	suffix := unsafeNameChars.ReplaceAllString(strings.TrimPrefix(ext, "."), "")
	if suffix == "" {
		return ""
	}

	return "." + suffix
}

// JoinKey joins the segments with '/', trimming leading and trailing slashes from
// each and skipping empty segments.
func JoinKey(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.Trim(s, "/"); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, "/")
}

// extOrDefault returns the extension of the name, or ".mp4" if it has none.
func extOrDefault(name string) string {
	if ext := path.Ext(name); ext != "" && ext != "." {
		return ext
	}

	return ".mp4"
}

// baseName strips the directory and extension from the name.
func baseName(name string) string {
	b := path.Base(strings.ReplaceAll(name, `\`, "/"))
	if b == "." || b == "/" {
		return ""
	}

	return strings.TrimSuffix(b, path.Ext(b))
}

// StoredName is the sanitized filename used for the raw upload.
func StoredName(id uuid.UUID, originalName string) string {
	return SanitizeName(originalName, fmt.Sprintf("video-%s%s", id, extOrDefault(originalName)))
}

// TranscodedName is the sanitized filename of a transcoded variant.
func TranscodedName(id uuid.UUID, originalName string, preset string) string {
	base := baseName(originalName)
	if base == "" {
		base = "video"
	}

	return SanitizeName(fmt.Sprintf("%s-%s.mp4", base, preset), fmt.Sprintf("%s-%s.mp4", id, preset))
}

func (l KeyLayout) RawKey(id uuid.UUID, storedName string) string {
	return JoinKey(l.RawPrefix, id.String(), storedName)
}

func (l KeyLayout) ThumbnailKey(id uuid.UUID) string {
	return JoinKey(l.ThumbnailPrefix, id.String(), id.String()+".jpg")
}

func (l KeyLayout) TranscodedKey(id uuid.UUID, transcodedName string) string {
	return JoinKey(l.TranscodedPrefix, id.String(), transcodedName)
}
