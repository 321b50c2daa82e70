package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hbomb79/Reel/pkg/logger"
)

var (
	log = logger.Get("Storage")

	// ErrObjectNotFound is returned when the requested key does not exist
	// in the bucket.
	ErrObjectNotFound = errors.New("object not found")

	// ErrRangeNotSatisfiable is returned when a byte range lies entirely
	// outside of the object.
	ErrRangeNotSatisfiable = errors.New("requested range not satisfiable")

	// ErrStorage wraps every other failure (network, auth, throttling) and is
	// considered transient by callers.
	ErrStorage = errors.New("object storage failure")
)

type (
	// ObjectStore is the gateway Reel uses to persist and deliver video
	// and thumbnail bytes.
	ObjectStore interface {
		Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
		Get(ctx context.Context, key string, byteRange *ByteRange) (*Object, error)
		Delete(ctx context.Context, key string) error
		SignURL(ctx context.Context, key string, opts SignOptions) (string, error)
	}

	// Object is an open read against the store. The caller must close Body.
	Object struct {
		Body          io.ReadCloser
		ContentType   string
		ContentLength int64
		// ContentRange is the value for the Content-Range header, and is only
		// set when Partial is true.
		ContentRange string
		Partial      bool
	}

	// RangeNotSatisfiableError reports the size of the object a byte range
	// could not be satisfied against, for use in the 416 Content-Range header.
	RangeNotSatisfiableError struct {
		Size  int64
		cause error
	}

	SignMethod int

	SignOptions struct {
		Method      SignMethod
		TTL         time.Duration
		Download    bool
		Filename    string
		ContentType string
	}

	// Config selects and configures the storage driver.
	Config struct {
		Driver              string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"s3" validate:"oneof=s3 minio"`
		Bucket              string `yaml:"bucket" env:"S3_BUCKET" env-required:"true" validate:"required"`
		Region              string `yaml:"region" env:"AWS_REGION" env-default:"ap-southeast-2"`
		Endpoint            string `yaml:"endpoint" env:"STORAGE_ENDPOINT" validate:"required_if=Driver minio"`
		AccessKey           string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
		SecretKey           string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
		UseSSL              bool   `yaml:"use_ssl" env:"STORAGE_USE_SSL" env-default:"true"`
		RawPrefix           string `yaml:"raw_prefix" env:"S3_RAW_PREFIX" env-default:"raw-videos/"`
		TranscodedPrefix    string `yaml:"transcoded_prefix" env:"S3_TRANSCODED_PREFIX" env-default:"transcoded-videos/"`
		ThumbnailPrefix     string `yaml:"thumbnail_prefix" env:"S3_THUMBNAIL_PREFIX" env-default:"thumbnails/"`
		PresignedTTLSeconds int    `yaml:"presigned_ttl_seconds" env:"PRESIGNED_TTL_SECONDS" env-default:"900" validate:"min=1,max=604800"`
	}
)

const (
	SignGet SignMethod = iota
	SignPut
)

func (m SignMethod) String() string {
	switch m {
	case SignGet:
		return "GET"
	case SignPut:
		return "PUT"
	}

	return fmt.Sprintf("UNKNOWN[%d]", m)
}

func (c Config) PresignedTTL() time.Duration {
	return time.Duration(c.PresignedTTLSeconds) * time.Second
}

// New constructs the ObjectStore selected by the driver in the config.
func New(ctx context.Context, config Config) (ObjectStore, error) {
	switch config.Driver {
	case "minio":
		store, err := NewMinioStore(config)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}

		return store, nil
	case "s3", "":
		return NewS3Store(ctx, config)
	}

	return nil, fmt.Errorf("unknown storage driver %q", config.Driver)
}

// ContentDisposition builds the Content-Disposition value used for signed
// reads and streamed downloads. Quotes are stripped from the filename so the
// header can not be broken out of.
func ContentDisposition(download bool, filename string) string {
	kind := "inline"
	if download {
		kind = "attachment"
	}
	if filename == "" {
		return kind
	}

	return fmt.Sprintf(`%s; filename="%s"`, kind, stripQuotes(filename))
}

func stripQuotes(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' {
			continue
		}
		out = append(out, r)
	}

	return string(out)
}

func (e *RangeNotSatisfiableError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (object size %d): %v", ErrRangeNotSatisfiable, e.Size, e.cause)
	}

	return fmt.Sprintf("%s (object size %d)", ErrRangeNotSatisfiable, e.Size)
}

func (e *RangeNotSatisfiableError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrRangeNotSatisfiable, e.cause}
	}

	return []error{ErrRangeNotSatisfiable}
}

// ContentRange is the unsatisfied-range header value, e.g. "bytes */1024".
func (e *RangeNotSatisfiableError) ContentRange() string {
	return fmt.Sprintf("bytes */%d", e.Size)
}
