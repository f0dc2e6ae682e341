package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CouponCache counts redemptions per coupon code. Redis INCR keeps the
// count correct across concurrent redeem requests.
type CouponCache interface {
	IncrRedemptions(ctx context.Context, code string) (int64, error)
	Redemptions(ctx context.Context, code string) (int64, error)
	Reset(ctx context.Context, code string) error
}

type couponCache struct {
	client *redis.Client
}

func NewCouponCache(client *redis.Client) CouponCache {
	return &couponCache{
		client: client,
	}
}

func (c *couponCache) IncrRedemptions(ctx context.Context, code string) (int64, error) {
	return c.client.Incr(ctx, "coupon:redemptions:"+code).Result()
}

func (c *couponCache) Redemptions(ctx context.Context, code string) (int64, error) {
	n, err := c.client.Get(ctx, "coupon:redemptions:"+code).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func (c *couponCache) Reset(ctx context.Context, code string) error {
	return c.client.Del(ctx, "coupon:redemptions:"+code).Err()
}
