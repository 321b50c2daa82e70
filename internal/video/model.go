package video

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	Status string

	Variant string

	// Record is the metadata held for a single uploaded video. It is keyed by the
	// combination of ID and OwnerID; a record is never visible to any other owner.
	Record struct {
		ID                 uuid.UUID `db:"video_id" json:"id"`
		OwnerID            string    `db:"owner_id" json:"ownerId"`
		OriginalName       string    `db:"original_name" json:"originalName"`
		MimeType           string    `db:"mime_type" json:"mimeType"`
		Format             string    `db:"format" json:"format"`
		SizeBytes          int64     `db:"size_bytes" json:"sizeBytes"`
		DurationSec        *float64  `db:"duration_sec" json:"durationSec"`
		Width              *int      `db:"width" json:"width"`
		Height             *int      `db:"height" json:"height"`
		Status             Status    `db:"status" json:"status"`
		S3Key              string    `db:"s3_key" json:"s3Key"`
		ThumbKey           *string   `db:"thumb_key" json:"thumbKey"`
		TranscodedKey      *string   `db:"transcoded_key" json:"transcodedKey"`
		TranscodedFilename *string   `db:"transcoded_filename" json:"transcodedFilename"`
		CreatedAt          time.Time `db:"created_at" json:"createdAt"`
		UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
	}

	// Update is a partial update to a record. Nil fields are left untouched. Setting
	// ClearTranscoded nulls the transcoded key and filename, and takes precedence
	// over any values given for them.
	Update struct {
		Status             *Status
		TranscodedKey      *string
		TranscodedFilename *string
		ClearTranscoded    bool
	}

	// View is a record as presented to its owner, with any time-limited URLs resolved.
	View struct {
		*Record
		ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	}

	Page struct {
		Page  int     `json:"page"`
		Limit int     `json:"limit"`
		Total int     `json:"total"`
		Items []*View `json:"items"`
	}
)

const (
	StatusUploaded    Status = "uploaded"
	StatusTranscoding Status = "transcoding"
	StatusReady       Status = "ready"
	StatusFailed      Status = "failed"

	VariantOriginal   Variant = "original"
	VariantTranscoded Variant = "transcoded"

	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// CanTransitionTo reports whether the status machine permits moving from
// the receiver to the status given.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusUploaded, StatusReady, StatusFailed:
		return next == StatusTranscoding
	case StatusTranscoding:
		return next == StatusReady || next == StatusFailed
	}

	return false
}

// statusesLeadingTo lists every status the machine permits moving to next from.
func statusesLeadingTo(next Status) []Status {
	from := make([]Status, 0, 3)
	for _, s := range []Status{StatusUploaded, StatusTranscoding, StatusReady, StatusFailed} {
		if s.CanTransitionTo(next) {
			from = append(from, s)
		}
	}

	return from
}

// ParseVariant accepts "original" or "transcoded" (case-insensitive). An empty
// value selects the original.
func ParseVariant(raw string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(raw))); v {
	case "":
		return VariantOriginal, nil
	case VariantOriginal, VariantTranscoded:
		return v, nil
	}

	return "", fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, raw)
}

func (u Update) isEmpty() bool {
	return u.Status == nil && u.TranscodedKey == nil && u.TranscodedFilename == nil && !u.ClearTranscoded
}

func ptr[T any](v T) *T { return &v }
