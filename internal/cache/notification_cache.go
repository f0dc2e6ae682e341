package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NotificationCache tracks unread notification counts per user
type NotificationCache interface {
	IncrUnread(ctx context.Context, userID string) error
	Unread(ctx context.Context, userID string) (int64, error)
	ClearUnread(ctx context.Context, userID string) error
}

type notificationCache struct {
	client *redis.Client
}

func NewNotificationCache(client *redis.Client) NotificationCache {
	return &notificationCache{
		client: client,
	}
}

func (c *notificationCache) IncrUnread(ctx context.Context, userID string) error {
	return c.client.Incr(ctx, "notifications:unread:"+userID).Err()
}

func (c *notificationCache) Unread(ctx context.Context, userID string) (int64, error) {
	n, err := c.client.Get(ctx, "notifications:unread:"+userID).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func (c *notificationCache) ClearUnread(ctx context.Context, userID string) error {
	return c.client.Del(ctx, "notifications:unread:"+userID).Err()
}
