package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"eduforms/internal/model"
	"eduforms/internal/service"
	"eduforms/internal/validate"
)

// CouponHandler handles coupon endpoints
type CouponHandler struct {
	couponSvc *service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponSvc *service.CouponService) *CouponHandler {
	return &CouponHandler{couponSvc: couponSvc}
}

// CouponRequest is the admin create body
type CouponRequest struct {
	Code            string    `json:"code" validate:"notblank"`
	DiscountPercent int       `json:"discountPercent" validate:"gt=0,lte=100"`
	CourseIDs       []string  `json:"courseIds"`
	ValidFrom       time.Time `json:"validFrom" validate:"required"`
	ValidUntil      time.Time `json:"validUntil" validate:"required,gtfield=ValidFrom"`
	MaxRedemptions  int64     `json:"maxRedemptions" validate:"gte=0"`
}

// Create handles POST /v1/admin/coupons
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid coupon", errs)
		return
	}

	id, err := h.couponSvc.Create(r.Context(), &model.Coupon{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		CourseIDs:       req.CourseIDs,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
		MaxRedemptions:  req.MaxRedemptions,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"couponId": id})
}

// List handles GET /v1/admin/coupons
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"coupons": coupons})
}

// Delete handles DELETE /v1/admin/coupons/{couponId}
func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	couponID := mux.Vars(r)["couponId"]

	if err := h.couponSvc.Delete(r.Context(), couponID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RedeemRequest is the public redeem body
type RedeemRequest struct {
	Code     string `json:"code" validate:"notblank"`
	CourseID string `json:"courseId" validate:"notblank"`
}

// Redeem handles POST /v1/coupons/redeem
func (h *CouponHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid redemption", errs)
		return
	}

	result, err := h.couponSvc.Redeem(r.Context(), req.Code, req.CourseID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			writeError(w, http.StatusNotFound, "coupon not found")
		case errors.Is(err, service.ErrCouponNotActive),
			errors.Is(err, service.ErrCouponExhausted),
			errors.Is(err, service.ErrCouponNotApplicable):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
