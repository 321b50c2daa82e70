package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/database"
)

const videosTable = "videos"

// Store persists video records to Postgres. The owner ID is part of every lookup,
// so records belonging to another owner behave exactly as if they did not exist.
type Store struct {
	db database.Queryable
}

func NewStore(db database.Queryable) *Store {
	return &Store{db: db}
}

func (store *Store) Put(ctx context.Context, record *Record) error {
	query, args, err := squirrel.Insert(videosTable).
		SetMap(map[string]any{
			"video_id":            record.ID,
			"owner_id":            record.OwnerID,
			"original_name":       record.OriginalName,
			"mime_type":           record.MimeType,
			"format":              record.Format,
			"size_bytes":          record.SizeBytes,
			"duration_sec":        record.DurationSec,
			"width":               record.Width,
			"height":              record.Height,
			"status":              record.Status,
			"s3_key":              record.S3Key,
			"thumb_key":           record.ThumbKey,
			"transcoded_key":      record.TranscodedKey,
			"transcoded_filename": record.TranscodedFilename,
			"created_at":          record.CreatedAt,
			"updated_at":          record.UpdatedAt,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to construct insert video query: %w", err)
	}

	if _, err := store.db.ExecContext(ctx, store.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("%w: failed to insert video %s: %w", ErrStorage, record.ID, err)
	}

	return nil
}

func (store *Store) Get(ctx context.Context, id uuid.UUID, ownerID string) (*Record, error) {
	query, args, err := selectVideoBuilder().Where(squirrel.Eq{"video_id": id, "owner_id": ownerID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct select video query: %w", err)
	}

	var record Record
	if err := store.db.GetContext(ctx, &record, store.db.Rebind(query), args...); err != nil {
		return nil, classifyQueryError(id, err)
	}

	return &record, nil
}

// ListByOwner returns every record belonging to the owner. Ordering is not
// guaranteed at this layer.
func (store *Store) ListByOwner(ctx context.Context, ownerID string) ([]*Record, error) {
	query, args, err := selectVideoBuilder().Where(squirrel.Eq{"owner_id": ownerID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct list videos query: %w", err)
	}

	var results []*Record
	if err := store.db.SelectContext(ctx, &results, store.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("%w: failed to list videos for owner %s: %w", ErrStorage, ownerID, err)
	}

	return results, nil
}

// Update applies the partial update to the record in a single statement, refreshing
// updated_at, and returns the record as it is after the update. A status change is
// conditional on the record currently being in a status the machine permits moving
// from; otherwise nothing is written and ErrInvalidTransition is returned.
func (store *Store) Update(ctx context.Context, id uuid.UUID, ownerID string, update Update) (*Record, error) {
	if update.isEmpty() {
		return store.Get(ctx, id, ownerID)
	}

	builder := squirrel.Update(videosTable).
		Set("updated_at", squirrel.Expr("current_timestamp")).
		Where(squirrel.Eq{"video_id": id, "owner_id": ownerID}).
		Suffix("RETURNING *")

	if update.Status != nil {
		builder = builder.
			Set("status", *update.Status).
			Where(squirrel.Eq{"status": statusesLeadingTo(*update.Status)})
	}
	if update.ClearTranscoded {
		builder = builder.Set("transcoded_key", nil).Set("transcoded_filename", nil)
	} else {
		if update.TranscodedKey != nil {
			builder = builder.Set("transcoded_key", *update.TranscodedKey)
		}
		if update.TranscodedFilename != nil {
			builder = builder.Set("transcoded_filename", *update.TranscodedFilename)
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct update video query: %w", err)
	}

	var record Record
	err = store.db.GetContext(ctx, &record, store.db.Rebind(query), args...)
	if err == nil {
		return &record, nil
	}
	if update.Status == nil || !errors.Is(err, sql.ErrNoRows) {
		return nil, classifyQueryError(id, err)
	}

	// No row matched: either the video does not exist or its status forbids the change
	current, err := store.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: video %s is %s, not moving to %s", ErrInvalidTransition, id, current.Status, *update.Status)
}

// BeginTranscode moves the record in to the transcoding status, clearing any
// previously transcoded variant, and returns the record along with the transcoded
// key it held beforehand. The transition is conditional on the record not already
// transcoding, so that of any number of concurrent callers exactly one succeeds; the
// others receive ErrTranscodeInProgress. The previous key is read under the same row
// lock as the update, so a concurrent write of it can not be missed.
func (store *Store) BeginTranscode(ctx context.Context, id uuid.UUID, ownerID string) (*Record, *string, error) {
	previous, previousArgs, err := squirrel.Select("video_id", "transcoded_key").
		From(videosTable).
		Where(squirrel.Eq{"video_id": id, "owner_id": ownerID}).
		Where(squirrel.Eq{"status": statusesLeadingTo(StatusTranscoding)}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to construct begin transcode query: %w", err)
	}

	query := fmt.Sprintf(`WITH previous AS (%s)
		UPDATE %s AS v
		SET status = ?, transcoded_key = NULL, transcoded_filename = NULL, updated_at = current_timestamp
		FROM previous
		WHERE v.video_id = previous.video_id
		RETURNING v.*, previous.transcoded_key AS previous_transcoded_key`, previous, videosTable)
	args := append(previousArgs, StatusTranscoding)

	var row struct {
		Record
		PreviousKey *string `db:"previous_transcoded_key"`
	}
	err = store.db.GetContext(ctx, &row, store.db.Rebind(query), args...)
	if err == nil {
		return &row.Record, row.PreviousKey, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, classifyQueryError(id, err)
	}

	// No row matched: either the video does not exist or it is already transcoding
	if _, err := store.Get(ctx, id, ownerID); err != nil {
		return nil, nil, err
	}

	return nil, nil, fmt.Errorf("%w: %s", ErrTranscodeInProgress, id)
}

func (store *Store) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	query, args, err := squirrel.Delete(videosTable).Where(squirrel.Eq{"video_id": id, "owner_id": ownerID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to construct delete video query: %w", err)
	}

	res, err := store.db.ExecContext(ctx, store.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("%w: failed to delete video %s: %w", ErrStorage, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

// FailStaleTranscodes marks every record still in the transcoding status as failed,
// returning the number of records affected. This is used at startup, when no
// transcode can possibly still be running.
func (store *Store) FailStaleTranscodes(ctx context.Context) (int64, error) {
	query, args, err := squirrel.Update(videosTable).
		Set("status", StatusFailed).
		Set("updated_at", squirrel.Expr("current_timestamp")).
		Where(squirrel.Eq{"status": StatusTranscoding}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to construct fail stale transcodes query: %w", err)
	}

	res, err := store.db.ExecContext(ctx, store.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to mark stale transcodes: %w", ErrStorage, err)
	}

	return res.RowsAffected()
}

func selectVideoBuilder() squirrel.SelectBuilder {
	return squirrel.Select("*").From(videosTable)
}

func classifyQueryError(id uuid.UUID, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return fmt.Errorf("%w: query for video %s failed: %w", ErrStorage, id, err)
}
