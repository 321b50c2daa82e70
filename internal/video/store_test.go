package video_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/database"
	"github.com/hbomb79/Reel/internal/testhelpers"
	"github.com/hbomb79/Reel/internal/video"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(ownerID string, createdAt time.Time) *video.Record {
	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	id := uuid.New()

	return &video.Record{
		ID:           id,
		OwnerID:      ownerID,
		OriginalName: "clip.mov",
		MimeType:     "video/quicktime",
		Format:       "mov,mp4,m4a,3gp,3g2,mj2",
		SizeBytes:    1024,
		DurationSec:  ptr(12.5),
		Width:        ptr(1920),
		Height:       ptr(1080),
		Status:       video.StatusUploaded,
		S3Key:        "raw-videos/" + id.String() + "/clip.mov",
		ThumbKey:     ptr("thumbnails/" + id.String() + "/" + id.String() + ".jpg"),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func Test_Store(t *testing.T) {
	db := testhelpers.SpawnPostgres(t)
	store := video.NewStore(db)
	ctx := context.Background()

	t.Run("round trip preserves every field", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now())
		require.NoError(t, store.Put(ctx, rec))

		got, err := store.Get(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, rec.OwnerID, got.OwnerID)
		assert.Equal(t, rec.OriginalName, got.OriginalName)
		assert.Equal(t, rec.MimeType, got.MimeType)
		assert.Equal(t, rec.Format, got.Format)
		assert.Equal(t, rec.SizeBytes, got.SizeBytes)
		assert.Equal(t, rec.DurationSec, got.DurationSec)
		assert.Equal(t, rec.Width, got.Width)
		assert.Equal(t, rec.Height, got.Height)
		assert.Equal(t, rec.Status, got.Status)
		assert.Equal(t, rec.S3Key, got.S3Key)
		assert.Equal(t, rec.ThumbKey, got.ThumbKey)
		assert.Nil(t, got.TranscodedKey)
		assert.Nil(t, got.TranscodedFilename)
		assert.True(t, rec.CreatedAt.Equal(got.CreatedAt), "created at %s != %s", rec.CreatedAt, got.CreatedAt)
	})

	t.Run("optional metadata may be absent", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now())
		rec.DurationSec, rec.Width, rec.Height, rec.ThumbKey = nil, nil, nil, nil
		require.NoError(t, store.Put(ctx, rec))

		got, err := store.Get(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		assert.Nil(t, got.DurationSec)
		assert.Nil(t, got.Width)
		assert.Nil(t, got.ThumbKey)
	})

	t.Run("records are scoped to their owner", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now())
		require.NoError(t, store.Put(ctx, rec))

		_, err := store.Get(ctx, rec.ID, ownerB)
		assert.ErrorIs(t, err, video.ErrNotFound)
		_, err = store.Update(ctx, rec.ID, ownerB, video.Update{Status: ptr(video.StatusFailed)})
		assert.ErrorIs(t, err, video.ErrNotFound)
		_, _, err = store.BeginTranscode(ctx, rec.ID, ownerB)
		assert.ErrorIs(t, err, video.ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, rec.ID, ownerB), video.ErrNotFound)

		got, err := store.Get(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		assert.Equal(t, video.StatusUploaded, got.Status)
	})

	t.Run("list returns only the owners records", func(t *testing.T) {
		owner := "list-owner-" + uuid.NewString()
		for i := 0; i < 3; i++ {
			require.NoError(t, store.Put(ctx, newRecord(owner, time.Now())))
		}
		require.NoError(t, store.Put(ctx, newRecord("someone-else", time.Now())))

		records, err := store.ListByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, records, 3)
		for _, r := range records {
			assert.Equal(t, owner, r.OwnerID)
		}

		records, err = store.ListByOwner(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("update applies partial changes", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now().Add(-time.Hour))
		require.NoError(t, store.Put(ctx, rec))
		_, _, err := store.BeginTranscode(ctx, rec.ID, ownerA)
		require.NoError(t, err)

		key, filename := "transcoded-videos/x/clip-720p.mp4", "clip-720p.mp4"
		got, err := store.Update(ctx, rec.ID, ownerA, video.Update{
			Status:             ptr(video.StatusReady),
			TranscodedKey:      &key,
			TranscodedFilename: &filename,
		})
		require.NoError(t, err)
		assert.Equal(t, video.StatusReady, got.Status)
		assert.Equal(t, key, *got.TranscodedKey)
		assert.Equal(t, filename, *got.TranscodedFilename)
		assert.True(t, got.UpdatedAt.After(rec.UpdatedAt))
		assert.Equal(t, rec.S3Key, got.S3Key)

		_, _, err = store.BeginTranscode(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		got, err = store.Update(ctx, rec.ID, ownerA, video.Update{Status: ptr(video.StatusFailed), ClearTranscoded: true})
		require.NoError(t, err)
		assert.Equal(t, video.StatusFailed, got.Status)
		assert.Nil(t, got.TranscodedKey)
		assert.Nil(t, got.TranscodedFilename)

		got, err = store.Update(ctx, rec.ID, ownerA, video.Update{})
		require.NoError(t, err)
		assert.Equal(t, video.StatusFailed, got.Status)
	})

	t.Run("status changes follow the status machine", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now())
		require.NoError(t, store.Put(ctx, rec))

		key := "transcoded-videos/x/clip-720p.mp4"
		_, err := store.Update(ctx, rec.ID, ownerA, video.Update{Status: ptr(video.StatusReady), TranscodedKey: &key})
		assert.ErrorIs(t, err, video.ErrInvalidTransition)
		_, err = store.Update(ctx, rec.ID, ownerA, video.Update{Status: ptr(video.StatusFailed)})
		assert.ErrorIs(t, err, video.ErrInvalidTransition)

		got, err := store.Get(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		assert.Equal(t, video.StatusUploaded, got.Status)
		assert.Nil(t, got.TranscodedKey, "a rejected update must not write any of its fields")

		_, err = store.Update(ctx, uuid.New(), ownerA, video.Update{Status: ptr(video.StatusReady)})
		assert.ErrorIs(t, err, video.ErrNotFound)
	})

	t.Run("begin transcode returns the key it replaced", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now())
		require.NoError(t, store.Put(ctx, rec))

		_, previous, err := store.BeginTranscode(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		assert.Nil(t, previous)

		key := "transcoded-videos/x/clip-480p.mp4"
		_, err = store.Update(ctx, rec.ID, ownerA, video.Update{Status: ptr(video.StatusReady), TranscodedKey: &key})
		require.NoError(t, err)

		got, previous, err := store.BeginTranscode(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		require.NotNil(t, previous)
		assert.Equal(t, key, *previous)
		assert.Equal(t, video.StatusTranscoding, got.Status)
		assert.Nil(t, got.TranscodedKey)
		assert.Equal(t, rec.S3Key, got.S3Key)
	})

	t.Run("begin transcode admits exactly one caller", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now())
		key := "transcoded-videos/x/old.mp4"
		require.NoError(t, store.Put(ctx, rec))
		_, _, err := store.BeginTranscode(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		_, err = store.Update(ctx, rec.ID, ownerA, video.Update{Status: ptr(video.StatusReady), TranscodedKey: &key})
		require.NoError(t, err)

		var accepted, rejected atomic.Int32
		var previousReturned atomic.Int32
		wg := sync.WaitGroup{}
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, previous, err := store.BeginTranscode(ctx, rec.ID, ownerA)
				if err == nil {
					accepted.Add(1)
					if previous != nil && *previous == key {
						previousReturned.Add(1)
					}
					assert.Equal(t, video.StatusTranscoding, got.Status)
					assert.Nil(t, got.TranscodedKey)
					return
				}
				if assert.ErrorIs(t, err, video.ErrTranscodeInProgress) {
					rejected.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.EqualValues(t, 1, accepted.Load())
		assert.EqualValues(t, 7, rejected.Load())
		assert.EqualValues(t, 1, previousReturned.Load(), "the winner must learn the key it replaced")
	})

	t.Run("stale transcodes are failed", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now())
		require.NoError(t, store.Put(ctx, rec))
		_, _, err := store.BeginTranscode(ctx, rec.ID, ownerA)
		require.NoError(t, err)

		n, err := store.FailStaleTranscodes(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1))

		got, err := store.Get(ctx, rec.ID, ownerA)
		require.NoError(t, err)
		assert.Equal(t, video.StatusFailed, got.Status)
	})

	t.Run("store participates in transactions", func(t *testing.T) {
		committed := newRecord(ownerA, time.Now())
		require.NoError(t, database.WrapTx(ctx, db, func(tx *sqlx.Tx) error {
			return video.NewStore(tx).Put(ctx, committed)
		}))
		_, err := store.Get(ctx, committed.ID, ownerA)
		assert.NoError(t, err)

		rolledBack := newRecord(ownerA, time.Now())
		errAbort := errors.New("abort")
		err = database.WrapTx(ctx, db, func(tx *sqlx.Tx) error {
			if err := video.NewStore(tx).Put(ctx, rolledBack); err != nil {
				return err
			}
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)
		_, err = store.Get(ctx, rolledBack.ID, ownerA)
		assert.ErrorIs(t, err, video.ErrNotFound)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		rec := newRecord(ownerA, time.Now())
		require.NoError(t, store.Put(ctx, rec))

		require.NoError(t, store.Delete(ctx, rec.ID, ownerA))
		_, err := store.Get(ctx, rec.ID, ownerA)
		assert.ErrorIs(t, err, video.ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, rec.ID, ownerA), video.ErrNotFound)
	})
}
