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

// CourseHandler handles course endpoints
type CourseHandler struct {
	courseSvc *service.CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseSvc *service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// CourseRequest is the request body for creating or updating a course
type CourseRequest struct {
	Title       string `json:"title" validate:"notblank"`
	Slug        string `json:"slug" validate:"notblank"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"gte=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Published   bool   `json:"published"`
}

// Create handles POST /v1/admin/courses
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid course", errs)
		return
	}

	id, err := h.courseSvc.Create(r.Context(), &model.Course{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Published:   req.Published,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"courseId": id})
}

// Update handles PUT /v1/admin/courses/{courseId}
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["courseId"]

	var req CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid course", errs)
		return
	}

	course := &model.Course{
		ID:          courseID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Published:   req.Published,
	}
	if err := h.courseSvc.Update(r.Context(), course); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// ListAdmin handles GET /v1/admin/courses
func (h *CourseHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseSvc.List(r.Context(), false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

// ListPublic handles GET /v1/courses; drafts are hidden
func (h *CourseHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseSvc.List(r.Context(), true)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

// Get handles GET /v1/courses/{courseId}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["courseId"]

	course, err := h.courseSvc.GetByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			writeError(w, http.StatusNotFound, "course not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// Delete handles DELETE /v1/admin/courses/{courseId}
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["courseId"]

	if err := h.courseSvc.Delete(r.Context(), courseID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
