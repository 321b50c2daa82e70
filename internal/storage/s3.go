package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// S3Store is the ObjectStore backed by AWS S3 (or an S3-compatible endpoint).
type S3Store struct {
	bucket    string
	client    *s3.Client
	presigner *s3.PresignClient
}

// NewS3Store loads the default AWS configuration chain (env, shared config, instance
// role) for the configured region. Static credentials and a custom endpoint in the
// config take precedence when provided.
func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3StoreFromConfig(awsCfg, cfg), nil
}

// NewS3StoreFromConfig constructs the store from an already resolved AWS config.
func NewS3StoreFromConfig(awsCfg aws.Config, cfg Config) *S3Store {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		bucket:    cfg.Bucket,
		client:    client,
		presigner: s3.NewPresignClient(client),
	}
}

func (store *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := store.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put %s: %w", key, classifyS3Error(err))
	}

	log.Debugf("Put s3://%s/%s (%d bytes, %s)\n", store.bucket, key, size, contentType)
	return nil
}

func (store *S3Store) Get(ctx context.Context, key string, byteRange *ByteRange) (*Object, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	}
	if byteRange != nil {
		input.Range = aws.String(byteRange.HeaderValue())
	}

	out, err := store.client.GetObject(ctx, input)
	if err != nil {
		err = classifyS3Error(err)
		if errors.Is(err, ErrRangeNotSatisfiable) {
			err = store.rangeError(ctx, key, err)
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	obj := &Object{
		Body:          out.Body,
		ContentType:   aws.ToString(out.ContentType),
		ContentLength: aws.ToInt64(out.ContentLength),
		ContentRange:  aws.ToString(out.ContentRange),
	}
	obj.Partial = byteRange != nil && obj.ContentRange != ""

	return obj, nil
}

// rangeError attaches the object size to an unsatisfiable range, which S3 does not
// report in a form the SDK exposes. If the size can not be learned the original
// error is returned unchanged.
func (store *S3Store) rangeError(ctx context.Context, key string, cause error) error {
	head, err := store.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return cause
	}

	return &RangeNotSatisfiableError{Size: aws.ToInt64(head.ContentLength), cause: cause}
}

// Delete removes the key. Deleting a key that does not exist is not an error.
func (store *S3Store) Delete(ctx context.Context, key string) error {
	_, err := store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		classified := classifyS3Error(err)
		if errors.Is(classified, ErrObjectNotFound) {
			return nil
		}

		return fmt.Errorf("delete %s: %w", key, classified)
	}

	return nil
}

func (store *S3Store) SignURL(ctx context.Context, key string, opts SignOptions) (string, error) {
	expires := func(po *s3.PresignOptions) { po.Expires = opts.TTL }

	var (
		req *v4.PresignedHTTPRequest
		err error
	)
	switch opts.Method {
	case SignGet:
		input := &s3.GetObjectInput{
			Bucket:                     aws.String(store.bucket),
			Key:                        aws.String(key),
			ResponseContentDisposition: aws.String(ContentDisposition(opts.Download, opts.Filename)),
		}
		if opts.ContentType != "" {
			input.ResponseContentType = aws.String(opts.ContentType)
		}
		req, err = store.presigner.PresignGetObject(ctx, input, expires)
	case SignPut:
		input := &s3.PutObjectInput{
			Bucket: aws.String(store.bucket),
			Key:    aws.String(key),
		}
		if opts.ContentType != "" {
			input.ContentType = aws.String(opts.ContentType)
		}
		req, err = store.presigner.PresignPutObject(ctx, input, expires)
	default:
		return "", fmt.Errorf("cannot sign %s request for %s", opts.Method, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to presign %s %s: %w", ErrStorage, opts.Method, key, err)
	}

	return req.URL, nil
}

// classifyS3Error maps SDK errors on to the storage error kinds.
func classifyS3Error(err error) error {
	var (
		noSuchKey *types.NoSuchKey
		notFound  *types.NotFound
		apiErr    smithy.APIError
		respErr   *smithyhttp.ResponseError
	)

	switch {
	case errors.As(err, &noSuchKey), errors.As(err, &notFound):
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	case errors.As(err, &apiErr) && apiErr.ErrorCode() == "InvalidRange":
		return fmt.Errorf("%w: %w", ErrRangeNotSatisfiable, err)
	case errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	case errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusRequestedRangeNotSatisfiable:
		return fmt.Errorf("%w: %w", ErrRangeNotSatisfiable, err)
	}

	return fmt.Errorf("%w: %w", ErrStorage, err)
}
