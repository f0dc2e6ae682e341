package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"eduforms/internal/model"
	"eduforms/internal/service"
	"eduforms/internal/validate"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationSvc *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationSvc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// NotificationRequest is the admin create body
type NotificationRequest struct {
	Title    string                     `json:"title" validate:"notblank"`
	Body     string                     `json:"body" validate:"notblank"`
	Audience model.NotificationAudience `json:"audience" validate:"required,oneof=all course users"`
	CourseID string                     `json:"courseId"`
	UserIDs  []string                   `json:"userIds"`
}

// Create handles POST /v1/admin/notifications
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid notification", errs)
		return
	}

	id, err := h.notificationSvc.Create(r.Context(), &model.Notification{
		Title:    req.Title,
		Body:     req.Body,
		Audience: req.Audience,
		CourseID: req.CourseID,
		UserIDs:  req.UserIDs,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"notificationId": id})
}

// ListAdmin handles GET /v1/admin/notifications
func (h *NotificationHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

// Delete handles DELETE /v1/admin/notifications/{notificationId}
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["notificationId"]

	if err := h.notificationSvc.Delete(r.Context(), notificationID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListForRecipient handles GET /v1/notifications?userId=&courseId=
func (h *NotificationHandler) ListForRecipient(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	courseID := r.URL.Query().Get("courseId")

	notifications, err := h.notificationSvc.ForRecipient(r.Context(), userID, courseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	unread, err := h.notificationSvc.Unread(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkRead handles POST /v1/notifications/read?userId=
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := h.notificationSvc.MarkRead(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
