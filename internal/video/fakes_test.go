package video_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/storage"
	"github.com/hbomb79/Reel/internal/video"
)

// memStore is an in-memory MetadataStore which honours the same status machine
// and conditional transcode transition as the Postgres store.
type memStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*video.Record
}

func newMemStore() *memStore {
	return &memStore{records: make(map[uuid.UUID]*video.Record)}
}

func (store *memStore) find(id uuid.UUID, ownerID string) (*video.Record, error) {
	rec, ok := store.records[id]
	if !ok || rec.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: %s", video.ErrNotFound, id)
	}

	return rec, nil
}

func (store *memStore) Put(_ context.Context, record *video.Record) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	cp := *record
	store.records[record.ID] = &cp
	return nil
}

func (store *memStore) Get(_ context.Context, id uuid.UUID, ownerID string) (*video.Record, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	rec, err := store.find(id, ownerID)
	if err != nil {
		return nil, err
	}

	cp := *rec
	return &cp, nil
}

func (store *memStore) ListByOwner(_ context.Context, ownerID string) ([]*video.Record, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	out := make([]*video.Record, 0)
	for _, rec := range store.records {
		if rec.OwnerID == ownerID {
			cp := *rec
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (store *memStore) Update(_ context.Context, id uuid.UUID, ownerID string, update video.Update) (*video.Record, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	rec, err := store.find(id, ownerID)
	if err != nil {
		return nil, err
	}

	if update.Status != nil {
		if !rec.Status.CanTransitionTo(*update.Status) {
			return nil, fmt.Errorf("%w: %s is %s", video.ErrInvalidTransition, id, rec.Status)
		}
		rec.Status = *update.Status
	}
	if update.ClearTranscoded {
		rec.TranscodedKey = nil
		rec.TranscodedFilename = nil
	} else {
		if update.TranscodedKey != nil {
			rec.TranscodedKey = update.TranscodedKey
		}
		if update.TranscodedFilename != nil {
			rec.TranscodedFilename = update.TranscodedFilename
		}
	}
	rec.UpdatedAt = time.Now().UTC()

	cp := *rec
	return &cp, nil
}

func (store *memStore) BeginTranscode(_ context.Context, id uuid.UUID, ownerID string) (*video.Record, *string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	rec, err := store.find(id, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if rec.Status == video.StatusTranscoding {
		return nil, nil, fmt.Errorf("%w: %s", video.ErrTranscodeInProgress, id)
	}

	previousKey := rec.TranscodedKey
	rec.Status = video.StatusTranscoding
	rec.TranscodedKey = nil
	rec.TranscodedFilename = nil
	rec.UpdatedAt = time.Now().UTC()

	cp := *rec
	return &cp, previousKey, nil
}

func (store *memStore) Delete(_ context.Context, id uuid.UUID, ownerID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, err := store.find(id, ownerID); err != nil {
		return err
	}

	delete(store.records, id)
	return nil
}

func (store *memStore) FailStaleTranscodes(context.Context) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var n int64
	for _, rec := range store.records {
		if rec.Status == video.StatusTranscoding {
			rec.Status = video.StatusFailed
			n++
		}
	}

	return n, nil
}

type memObject struct {
	data        []byte
	contentType string
}

// memObjects is an in-memory ObjectStore. Signed URLs are fake but carry the key
// and the options used to sign them.
type memObjects struct {
	mu      sync.Mutex
	objects map[string]memObject
	signed  []storage.SignOptions
}

func newMemObjects() *memObjects {
	return &memObjects{objects: make(map[string]memObject)}
}

func (objects *memObjects) Put(_ context.Context, key string, body io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	objects.mu.Lock()
	defer objects.mu.Unlock()
	objects.objects[key] = memObject{data: data, contentType: contentType}
	return nil
}

func (objects *memObjects) Get(_ context.Context, key string, byteRange *storage.ByteRange) (*storage.Object, error) {
	objects.mu.Lock()
	obj, ok := objects.objects[key]
	objects.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrObjectNotFound, key)
	}

	size := int64(len(obj.data))
	if byteRange == nil {
		return &storage.Object{
			Body:          io.NopCloser(bytes.NewReader(obj.data)),
			ContentType:   obj.contentType,
			ContentLength: size,
		}, nil
	}

	start, end, err := byteRange.Resolve(size)
	if err != nil {
		return nil, err
	}

	return &storage.Object{
		Body:          io.NopCloser(bytes.NewReader(obj.data[start : end+1])),
		ContentType:   obj.contentType,
		ContentLength: end - start + 1,
		ContentRange:  storage.FormatContentRange(start, end, size),
		Partial:       true,
	}, nil
}

func (objects *memObjects) Delete(_ context.Context, key string) error {
	objects.mu.Lock()
	defer objects.mu.Unlock()

	delete(objects.objects, key)
	return nil
}

func (objects *memObjects) SignURL(_ context.Context, key string, opts storage.SignOptions) (string, error) {
	objects.mu.Lock()
	defer objects.mu.Unlock()

	objects.signed = append(objects.signed, opts)
	return fmt.Sprintf("https://objects.test/%s?expires=%d", key, int(opts.TTL.Seconds())), nil
}

func (objects *memObjects) has(key string) bool {
	objects.mu.Lock()
	defer objects.mu.Unlock()

	_, ok := objects.objects[key]
	return ok
}

func (objects *memObjects) keys() []string {
	objects.mu.Lock()
	defer objects.mu.Unlock()

	out := make([]string, 0, len(objects.objects))
	for k := range objects.objects {
		out = append(out, k)
	}

	return out
}

func (objects *memObjects) lastSigned() storage.SignOptions {
	objects.mu.Lock()
	defer objects.mu.Unlock()

	return objects.signed[len(objects.signed)-1]
}

// uuidFor returns a fixed, distinct ID for the number given.
func uuidFor(n int) uuid.UUID {
	var id uuid.UUID
	id[15] = byte(n)
	return id
}
