package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"eduforms/internal/cache"
	"eduforms/internal/model"
	"eduforms/internal/repository"
)

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponNotActive     = errors.New("coupon is outside its validity window")
	ErrCouponExhausted     = errors.New("coupon redemption limit reached")
	ErrCouponNotApplicable = errors.New("coupon does not apply to this course")
)

// RedeemResult is returned on a successful redemption
type RedeemResult struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
}

// CouponService handles coupon administration and redemption. Redemption
// counts go through Redis so the cap holds under concurrent requests.
type CouponService struct {
	couponRepo repository.CouponRepo
	cache      cache.CouponCache
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo repository.CouponRepo, couponCache cache.CouponCache) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		cache:      couponCache,
	}
}

// Create stores a new coupon; codes are normalized to upper case
func (s *CouponService) Create(ctx context.Context, coupon *model.Coupon) (string, error) {
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	return s.couponRepo.Create(ctx, coupon)
}

// List retrieves all coupons
func (s *CouponService) List(ctx context.Context) ([]*model.Coupon, error) {
	return s.couponRepo.List(ctx)
}

// Delete removes a coupon and resets its redemption counter
func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.couponRepo.Delete(ctx, id)
}

// Redeem validates a code against its window, course targeting and
// redemption cap, then counts the redemption
func (s *CouponService) Redeem(ctx context.Context, code, courseID string, now time.Time) (*RedeemResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if now.Before(coupon.ValidFrom) || now.After(coupon.ValidUntil) {
		return nil, ErrCouponNotActive
	}
	if !coupon.AppliesTo(courseID) {
		return nil, ErrCouponNotApplicable
	}

	if coupon.MaxRedemptions > 0 {
		count, err := s.cache.IncrRedemptions(ctx, code)
		if err != nil {
			return nil, err
		}
		if count > coupon.MaxRedemptions {
			return nil, ErrCouponExhausted
		}
	}

	return &RedeemResult{
		Code:            coupon.Code,
		DiscountPercent: coupon.DiscountPercent,
	}, nil
}
