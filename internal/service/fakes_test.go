package service

import (
	"context"
	"strconv"

	"eduforms/internal/model"
)

// In-memory repository and cache fakes for service tests.

type fakeFormRepo struct {
	forms map[string]*model.Form
	next  int
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: make(map[string]*model.Form)}
}

func (r *fakeFormRepo) Create(_ context.Context, f *model.Form) (string, error) {
	r.next++
	id := "form-" + strconv.Itoa(r.next)
	cp := *f
	cp.ID = id
	r.forms[id] = &cp
	return id, nil
}

func (r *fakeFormRepo) GetByID(_ context.Context, id string) (*model.Form, error) {
	return r.forms[id], nil
}

func (r *fakeFormRepo) List(_ context.Context) ([]*model.Form, error) {
	out := make([]*model.Form, 0, len(r.forms))
	for _, f := range r.forms {
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFormRepo) Update(_ context.Context, f *model.Form) error {
	cp := *f
	r.forms[f.ID] = &cp
	return nil
}

func (r *fakeFormRepo) Delete(_ context.Context, id string) error {
	delete(r.forms, id)
	return nil
}

type fakeSubmissionRepo struct {
	subs map[string]*model.Submission
	next int
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: make(map[string]*model.Submission)}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *model.Submission) (string, error) {
	r.next++
	id := "sub-" + strconv.Itoa(r.next)
	cp := *s
	cp.ID = id
	r.subs[id] = &cp
	return id, nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id string) (*model.Submission, error) {
	return r.subs[id], nil
}

func (r *fakeSubmissionRepo) GetByFormID(_ context.Context, formID string) ([]*model.Submission, error) {
	var out []*model.Submission
	for _, s := range r.subs {
		if s.FormID == formID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeCouponRepo struct {
	coupons map[string]*model.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[string]*model.Coupon)}
}

func (r *fakeCouponRepo) Create(_ context.Context, c *model.Coupon) (string, error) {
	cp := *c
	cp.ID = "coupon-" + c.Code
	r.coupons[c.Code] = &cp
	return cp.ID, nil
}

func (r *fakeCouponRepo) GetByCode(_ context.Context, code string) (*model.Coupon, error) {
	return r.coupons[code], nil
}

func (r *fakeCouponRepo) List(_ context.Context) ([]*model.Coupon, error) {
	out := make([]*model.Coupon, 0, len(r.coupons))
	for _, c := range r.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCouponRepo) Delete(_ context.Context, id string) error {
	for code, c := range r.coupons {
		if c.ID == id {
			delete(r.coupons, code)
		}
	}
	return nil
}

type fakeCouponCache struct {
	counts map[string]int64
}

func newFakeCouponCache() *fakeCouponCache {
	return &fakeCouponCache{counts: make(map[string]int64)}
}

func (c *fakeCouponCache) IncrRedemptions(_ context.Context, code string) (int64, error) {
	c.counts[code]++
	return c.counts[code], nil
}

func (c *fakeCouponCache) Redemptions(_ context.Context, code string) (int64, error) {
	return c.counts[code], nil
}

func (c *fakeCouponCache) Reset(_ context.Context, code string) error {
	delete(c.counts, code)
	return nil
}

type fakeWebinarRepo struct {
	webinars map[string]*model.Webinar
	next     int
}

func newFakeWebinarRepo() *fakeWebinarRepo {
	return &fakeWebinarRepo{webinars: make(map[string]*model.Webinar)}
}

func (r *fakeWebinarRepo) Create(_ context.Context, w *model.Webinar) (string, error) {
	r.next++
	id := "webinar-" + strconv.Itoa(r.next)
	cp := *w
	cp.ID = id
	r.webinars[id] = &cp
	return id, nil
}

func (r *fakeWebinarRepo) GetByID(_ context.Context, id string) (*model.Webinar, error) {
	return r.webinars[id], nil
}

func (r *fakeWebinarRepo) List(_ context.Context) ([]*model.Webinar, error) {
	out := make([]*model.Webinar, 0, len(r.webinars))
	for _, w := range r.webinars {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWebinarRepo) ListByCourse(_ context.Context, courseID string) ([]*model.Webinar, error) {
	var out []*model.Webinar
	for _, w := range r.webinars {
		if w.CourseID == courseID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWebinarRepo) Update(_ context.Context, w *model.Webinar) error {
	cp := *w
	r.webinars[w.ID] = &cp
	return nil
}

func (r *fakeWebinarRepo) Delete(_ context.Context, id string) error {
	delete(r.webinars, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications []*model.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *model.Notification) (string, error) {
	cp := *n
	cp.ID = "n-" + strconv.Itoa(len(r.notifications)+1)
	r.notifications = append(r.notifications, &cp)
	return cp.ID, nil
}

func (r *fakeNotificationRepo) List(_ context.Context) ([]*model.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id string) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}
