package video

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Reel/pkg/logger"
)

func metadataCacheKey(ownerID string, id uuid.UUID) string {
	return fmt.Sprintf("video:%s:%s:metadata", ownerID, id)
}

func presignedCacheKey(ownerID string, id uuid.UUID, variant Variant, download bool) string {
	flag := 0
	if download {
		flag = 1
	}

	return fmt.Sprintf("video:%s:%s:presigned:%s:%d", ownerID, id, variant, flag)
}

// cacheKeysFor lists every cache entry which may be held for the video.
func cacheKeysFor(ownerID string, id uuid.UUID) []string {
	keys := []string{metadataCacheKey(ownerID, id)}
	for _, variant := range []Variant{VariantOriginal, VariantTranscoded} {
		keys = append(keys,
			presignedCacheKey(ownerID, id, variant, false),
			presignedCacheKey(ownerID, id, variant, true),
		)
	}

	return keys
}

// cacheTTL is the lifetime of a cached response. Entries never outlive half of
// the presigned URL TTL so that a cached URL always has useful life left in it.
func (service *Service) cacheTTL() time.Duration {
	ttl := service.config.CacheTTL
	if half := service.config.PresignTTL / 2; half > 0 && (ttl <= 0 || half < ttl) {
		ttl = half
	}

	return ttl
}

func (service *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if service.cache == nil {
		return false
	}

	hit, err := service.cache.GetJSON(ctx, key, dest)
	if err != nil {
		log.Emit(logger.WARNING, "Cache read of %s failed: %v\n", key, err)
		return false
	}

	return hit
}

func (service *Service) cacheSet(ctx context.Context, key string, value any) {
	if service.cache == nil {
		return
	}

	ttl := service.cacheTTL()
	if ttl <= 0 {
		return
	}

	if err := service.cache.SetJSON(ctx, key, value, ttl); err != nil {
		log.Emit(logger.WARNING, "Cache write of %s failed: %v\n", key, err)
	}
}

func (service *Service) invalidate(ctx context.Context, ownerID string, id uuid.UUID) {
	if service.cache == nil {
		return
	}

	if err := service.cache.Delete(ctx, cacheKeysFor(ownerID, id)...); err != nil {
		log.Emit(logger.WARNING, "Cache invalidation for %s failed: %v\n", id, err)
	}
}

// NormalisePreset lower-cases and trims the preset name, substituting the fallback
// when it is empty.
func NormalisePreset(name string, fallback string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return strings.ToLower(fallback)
	}

	return name
}
