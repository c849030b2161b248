package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dorm-finder/db"
	"dorm-finder/models/dorm"
)

const DORM_FILTER_KEY_PREFIX_V1 = "dorm_filter_v1:"
const DORM_FILTER_KEY_FORMAT_V1 = DORM_FILTER_KEY_PREFIX_V1 + "%s"

// RedisFilterCacheDAO caches filter results keyed by the canonical criteria string.
type RedisFilterCacheDAO struct {
	client db.RedisClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisFilterCacheDAO creates the DAO. A zero ttl keeps entries until invalidated.
func NewRedisFilterCacheDAO(client db.RedisClient, ttl time.Duration, logger *slog.Logger) *RedisFilterCacheDAO {
	return &RedisFilterCacheDAO{client: client, ttl: ttl, logger: logger}
}

// GetFilterResult returns the cached listings for criteriaKey. found is false on a miss.
func (dao *RedisFilterCacheDAO) GetFilterResult(criteriaKey string) (listings []dorm.Listing, found bool, err error) {
	key := fmt.Sprintf(DORM_FILTER_KEY_FORMAT_V1, criteriaKey)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get filter result from redis: %w", err)
	}
	if err := json.Unmarshal([]byte(str), &listings); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal filter result JSON: %w", err)
	}
	return listings, true, nil
}

// SetFilterResult caches listings under criteriaKey.
func (dao *RedisFilterCacheDAO) SetFilterResult(criteriaKey string, listings []dorm.Listing) error {
	if listings == nil {
		listings = []dorm.Listing{}
	}
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to marshal filter result for %q: %w", criteriaKey, err)
	}
	key := fmt.Sprintf(DORM_FILTER_KEY_FORMAT_V1, criteriaKey)
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set filter result in redis: %w", err)
	}
	return nil
}

// ListCachedCriteriaKeys returns the criteria keys with a cached result.
func (dao *RedisFilterCacheDAO) ListCachedCriteriaKeys() ([]string, error) {
	keys, err := dao.client.Keys(DORM_FILTER_KEY_PREFIX_V1 + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list filter cache keys: %w", err)
	}
	criteria := make([]string, 0, len(keys))
	for _, k := range keys {
		criteria = append(criteria, strings.TrimPrefix(k, DORM_FILTER_KEY_PREFIX_V1))
	}
	return criteria, nil
}

// InvalidateAll drops every cached filter result and returns how many were removed.
func (dao *RedisFilterCacheDAO) InvalidateAll() (int, error) {
	keys, err := dao.client.Keys(DORM_FILTER_KEY_PREFIX_V1 + "*")
	if err != nil {
		return 0, fmt.Errorf("failed to list filter cache keys: %w", err)
	}
	for _, k := range keys {
		if err := dao.client.Del(k); err != nil {
			return 0, fmt.Errorf("failed to delete filter cache key %s: %w", k, err)
		}
	}
	dao.logger.Info("[RedisFilterCacheDAO] Invalidated filter cache", "keys", len(keys))
	return len(keys), nil
}
