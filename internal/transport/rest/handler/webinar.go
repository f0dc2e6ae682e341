package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"eduforms/internal/model"
	"eduforms/internal/service"
	"eduforms/internal/validate"
)

// WebinarHandler handles webinar endpoints
type WebinarHandler struct {
	webinarSvc *service.WebinarService
}

// NewWebinarHandler creates a new webinar handler
func NewWebinarHandler(webinarSvc *service.WebinarService) *WebinarHandler {
	return &WebinarHandler{webinarSvc: webinarSvc}
}

// WebinarRequest is the request body for creating or updating a webinar
type WebinarRequest struct {
	CourseID      string `json:"courseId" validate:"notblank"`
	Title         string `json:"title" validate:"notblank"`
	ScheduledDate string `json:"scheduledDate" validate:"notblank"`
	ScheduledTime string `json:"scheduledTime" validate:"notblank"`
	DurationMin   int    `json:"durationMin" validate:"gt=0"`
	StreamURL     string `json:"streamUrl"`
}

// Create handles POST /v1/admin/webinars
func (h *WebinarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req WebinarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid webinar", errs)
		return
	}

	id, err := h.webinarSvc.Create(r.Context(), &model.Webinar{
		CourseID:      req.CourseID,
		Title:         req.Title,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		DurationMin:   req.DurationMin,
		StreamURL:     req.StreamURL,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"webinarId": id})
}

// Update handles PUT /v1/admin/webinars/{webinarId}
func (h *WebinarHandler) Update(w http.ResponseWriter, r *http.Request) {
	webinarID := mux.Vars(r)["webinarId"]

	var req WebinarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid webinar", errs)
		return
	}

	webinar := &model.Webinar{
		ID:            webinarID,
		CourseID:      req.CourseID,
		Title:         req.Title,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		DurationMin:   req.DurationMin,
		StreamURL:     req.StreamURL,
	}
	if err := h.webinarSvc.Update(r.Context(), webinar); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, webinar)
}

// List handles GET /v1/admin/webinars
func (h *WebinarHandler) List(w http.ResponseWriter, r *http.Request) {
	webinars, err := h.webinarSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"webinars": webinars})
}

// Get handles GET /v1/webinars/{webinarId}
func (h *WebinarHandler) Get(w http.ResponseWriter, r *http.Request) {
	webinarID := mux.Vars(r)["webinarId"]

	webinar, err := h.webinarSvc.GetByID(r.Context(), webinarID)
	if err != nil {
		if errors.Is(err, service.ErrWebinarNotFound) {
			writeError(w, http.StatusNotFound, "webinar not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, webinar)
}

// Countdown handles GET /v1/webinars/{webinarId}/countdown
func (h *WebinarHandler) Countdown(w http.ResponseWriter, r *http.Request) {
	webinarID := mux.Vars(r)["webinarId"]

	countdown, err := h.webinarSvc.Countdown(r.Context(), webinarID)
	if err != nil {
		if errors.Is(err, service.ErrWebinarNotFound) {
			writeError(w, http.StatusNotFound, "webinar not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, countdown)
}

// Delete handles DELETE /v1/admin/webinars/{webinarId}
func (h *WebinarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	webinarID := mux.Vars(r)["webinarId"]

	if err := h.webinarSvc.Delete(r.Context(), webinarID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
