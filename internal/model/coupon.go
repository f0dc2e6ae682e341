package model

import "time"

// Coupon is a discount code with a validity window and optional course
// targeting. An empty CourseIDs list applies to every course.
type Coupon struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Code            string    `json:"code" bson:"code"`
	DiscountPercent int       `json:"discountPercent" bson:"discountPercent"`
	CourseIDs       []string  `json:"courseIds,omitempty" bson:"courseIds,omitempty"`
	ValidFrom       time.Time `json:"validFrom" bson:"validFrom"`
	ValidUntil      time.Time `json:"validUntil" bson:"validUntil"`
	MaxRedemptions  int64     `json:"maxRedemptions" bson:"maxRedemptions"` // 0 means unlimited
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// AppliesTo reports whether the coupon covers the given course
func (c *Coupon) AppliesTo(courseID string) bool {
	if len(c.CourseIDs) == 0 {
		return true
	}
	for _, id := range c.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
