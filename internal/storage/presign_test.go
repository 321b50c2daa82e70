package storage_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/hbomb79/Reel/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStorageConfig = storage.Config{
	Bucket:              "reel-test",
	Region:              "ap-southeast-2",
	AccessKey:           "AKIDEXAMPLE",
	SecretKey:           "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
	PresignedTTLSeconds: 900,
}

func newOfflineS3Store() *storage.S3Store {
	awsCfg := aws.Config{
		Region:      testStorageConfig.Region,
		Credentials: credentials.NewStaticCredentialsProvider(testStorageConfig.AccessKey, testStorageConfig.SecretKey, ""),
	}

	return storage.NewS3StoreFromConfig(awsCfg, testStorageConfig)
}

func Test_S3Store_SignURL_Get(t *testing.T) {
	t.Parallel()

	store := newOfflineS3Store()
	signed, err := store.SignURL(context.Background(), "transcoded-videos/abc.mp4", storage.SignOptions{
		Method:      storage.SignGet,
		TTL:         testStorageConfig.PresignedTTL(),
		Download:    true,
		Filename:    "holiday.mp4",
		ContentType: "video/mp4",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(signed)
	require.NoError(t, err)

	assert.Contains(t, parsed.Host+parsed.Path, "reel-test")
	assert.Contains(t, parsed.Path, "transcoded-videos/abc.mp4")

	query := parsed.Query()
	assert.Equal(t, "900", query.Get("X-Amz-Expires"))
	assert.Equal(t, `attachment; filename="holiday.mp4"`, query.Get("response-content-disposition"))
	assert.Equal(t, "video/mp4", query.Get("response-content-type"))
	assert.NotEmpty(t, query.Get("X-Amz-Signature"))
}

func Test_S3Store_SignURL_Put(t *testing.T) {
	t.Parallel()

	store := newOfflineS3Store()
	signed, err := store.SignURL(context.Background(), "raw-videos/abc.mp4", storage.SignOptions{
		Method: storage.SignPut,
		TTL:    time.Minute,
	})
	require.NoError(t, err)

	parsed, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "60", parsed.Query().Get("X-Amz-Expires"))
	assert.Empty(t, parsed.Query().Get("response-content-disposition"))
}

func Test_MinioStore_SignURL_Get(t *testing.T) {
	t.Parallel()

	cfg := testStorageConfig
	cfg.Driver = "minio"
	cfg.Endpoint = "localhost:9000"
	cfg.UseSSL = false

	store, err := storage.NewMinioStore(cfg)
	require.NoError(t, err)

	signed, err := store.SignURL(context.Background(), "thumbnails/abc.jpg", storage.SignOptions{
		Method:   storage.SignGet,
		TTL:      cfg.PresignedTTL(),
		Filename: "abc.jpg",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(signed)
	require.NoError(t, err)

	assert.Equal(t, "http", parsed.Scheme)
	assert.Equal(t, "localhost:9000", parsed.Host)
	assert.Equal(t, "/reel-test/thumbnails/abc.jpg", parsed.Path)
	assert.Equal(t, "900", parsed.Query().Get("X-Amz-Expires"))
	assert.Equal(t, `inline; filename="abc.jpg"`, parsed.Query().Get("response-content-disposition"))
}

func Test_SignMethod_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GET", storage.SignGet.String())
	assert.Equal(t, "PUT", storage.SignPut.String())
	assert.Equal(t, "UNKNOWN[7]", storage.SignMethod(7).String())
}
