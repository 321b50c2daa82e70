package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hbomb79/Reel/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore is the ObjectStore backed by a MinIO (or other S3-compatible)
// server, typically used for local development.
type MinioStore struct {
	bucket string
	region string
	client *minio.Client
}

func NewMinioStore(cfg Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio connection: %w", err)
	}

	return &MinioStore{bucket: cfg.Bucket, region: cfg.Region, client: client}, nil
}

// EnsureBucket creates the configured bucket if it does not already exist.
func (store *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := store.client.BucketExists(ctx, store.bucket)
	if err != nil {
		return fmt.Errorf("%w: failed to check bucket %s: %w", ErrStorage, store.bucket, err)
	}
	if exists {
		return nil
	}

	if err := store.client.MakeBucket(ctx, store.bucket, minio.MakeBucketOptions{Region: store.region}); err != nil {
		return fmt.Errorf("%w: failed to create bucket %s: %w", ErrStorage, store.bucket, err)
	}

	log.Emit(logger.NEW, "Created bucket %s\n", store.bucket)
	return nil
}

func (store *MinioStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if _, err := store.client.PutObject(ctx, store.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return fmt.Errorf("put %s: %w", key, classifyMinioError(err))
	}

	log.Debugf("Put minio://%s/%s (%d bytes, %s)\n", store.bucket, key, size, contentType)
	return nil
}

// Get stats the object before reading it so that ranges can be resolved against
// the object size, which minio-go does not surface from a ranged read.
func (store *MinioStore) Get(ctx context.Context, key string, byteRange *ByteRange) (*Object, error) {
	info, err := store.client.StatObject(ctx, store.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", key, classifyMinioError(err))
	}

	opts := minio.GetObjectOptions{}
	obj := &Object{ContentType: info.ContentType, ContentLength: info.Size}
	if byteRange != nil {
		start, end, err := byteRange.Resolve(info.Size)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		if err := opts.SetRange(start, end); err != nil {
			return nil, fmt.Errorf("get %s: %w: %w", key, ErrInvalidRange, err)
		}

		obj.ContentLength = end - start + 1
		obj.ContentRange = FormatContentRange(start, end, info.Size)
		obj.Partial = true
	}

	reader, err := store.client.GetObject(ctx, store.bucket, key, opts)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, classifyMinioError(err))
	}

	obj.Body = reader
	return obj, nil
}

func (store *MinioStore) Delete(ctx context.Context, key string) error {
	if err := store.client.RemoveObject(ctx, store.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		classified := classifyMinioError(err)
		if errors.Is(classified, ErrObjectNotFound) {
			return nil
		}

		return fmt.Errorf("delete %s: %w", key, classified)
	}

	return nil
}

func (store *MinioStore) SignURL(ctx context.Context, key string, opts SignOptions) (string, error) {
	var (
		signed *url.URL
		err    error
	)
	switch opts.Method {
	case SignGet:
		params := url.Values{}
		params.Set("response-content-disposition", ContentDisposition(opts.Download, opts.Filename))
		if opts.ContentType != "" {
			params.Set("response-content-type", opts.ContentType)
		}
		signed, err = store.client.PresignedGetObject(ctx, store.bucket, key, opts.TTL, params)
	case SignPut:
		signed, err = store.client.PresignedPutObject(ctx, store.bucket, key, opts.TTL)
	default:
		return "", fmt.Errorf("cannot sign %s request for %s", opts.Method, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to presign %s %s: %w", ErrStorage, opts.Method, key, err)
	}

	return signed.String(), nil
}

func classifyMinioError(err error) error {
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	case resp.Code == "InvalidRange" || resp.StatusCode == http.StatusRequestedRangeNotSatisfiable:
		return fmt.Errorf("%w: %w", ErrRangeNotSatisfiable, err)
	}

	return fmt.Errorf("%w: %w", ErrStorage, err)
}
