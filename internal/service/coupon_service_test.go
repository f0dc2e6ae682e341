package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduforms/internal/model"
)

func testCoupon() *model.Coupon {
	return &model.Coupon{
		Code:            "LAUNCH20",
		DiscountPercent: 20,
		ValidFrom:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:      time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC),
		MaxRedemptions:  2,
	}
}

func TestRedeemHappyPath(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo, newFakeCouponCache())

	_, err := svc.Create(context.Background(), testCoupon())
	require.NoError(t, err)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	res, err := svc.Redeem(context.Background(), "launch20", "course-1", now)
	require.NoError(t, err)
	assert.Equal(t, "LAUNCH20", res.Code)
	assert.Equal(t, 20, res.DiscountPercent)
}

func TestRedeemOutsideWindow(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo, newFakeCouponCache())
	_, err := svc.Create(context.Background(), testCoupon())
	require.NoError(t, err)

	_, err = svc.Redeem(context.Background(), "LAUNCH20", "course-1", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrCouponNotActive)
}

func TestRedeemRespectsCap(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo, newFakeCouponCache())
	_, err := svc.Create(context.Background(), testCoupon())
	require.NoError(t, err)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		_, err := svc.Redeem(context.Background(), "LAUNCH20", "course-1", now)
		require.NoError(t, err)
	}

	_, err = svc.Redeem(context.Background(), "LAUNCH20", "course-1", now)
	assert.ErrorIs(t, err, ErrCouponExhausted)
}

func TestRedeemCourseTargeting(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo, newFakeCouponCache())

	c := testCoupon()
	c.CourseIDs = []string{"course-1"}
	_, err := svc.Create(context.Background(), c)
	require.NoError(t, err)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err = svc.Redeem(context.Background(), "LAUNCH20", "course-2", now)
	assert.ErrorIs(t, err, ErrCouponNotApplicable)
}

func TestRedeemUnknownCode(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo(), newFakeCouponCache())

	_, err := svc.Redeem(context.Background(), "NOPE", "course-1", time.Now())
	assert.ErrorIs(t, err, ErrCouponNotFound)
}
