package store

import (
	"fmt"
	"time"

	"github.com/dncarrero/videoclub-bot/types"
)

// RedisPendingStore keeps one pending cover per uploader. Entries expire via
// TTL so an abandoned cover never lingers past a day.
type RedisPendingStore struct {
	client *RedisClient
	ttl    time.Duration
}

func NewRedisPendingStore(redisClient *RedisClient, ttlHours int) *RedisPendingStore {
	ttl := time.Duration(ttlHours) * time.Hour
	if ttlHours <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisPendingStore{
		client: redisClient,
		ttl:    ttl,
	}
}

func (s *RedisPendingStore) SetPendingCover(userID int64, cover types.PendingCover) error {
	key := s.client.generateKey("pending_cover", fmt.Sprintf("%d", userID))
	return s.client.Set(key, cover, s.ttl)
}

func (s *RedisPendingStore) GetPendingCover(userID int64) (*types.PendingCover, error) {
	key := s.client.generateKey("pending_cover", fmt.Sprintf("%d", userID))
	var cover types.PendingCover
	if err := s.client.Get(key, &cover); err != nil {
		return nil, nil
	}
	return &cover, nil
}

func (s *RedisPendingStore) ClearPendingCover(userID int64) error {
	key := s.client.generateKey("pending_cover", fmt.Sprintf("%d", userID))
	return s.client.Del(key)
}
