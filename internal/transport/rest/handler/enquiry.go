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

// EnquiryHandler handles enquiry endpoints
type EnquiryHandler struct {
	enquirySvc *service.EnquiryService
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquirySvc *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquirySvc: enquirySvc}
}

// EnquiryRequest is the public contact form body
type EnquiryRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"notblank"`
}

// Create handles POST /v1/enquiries
func (h *EnquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req EnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid enquiry", errs)
		return
	}

	id, err := h.enquirySvc.Create(r.Context(), &model.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"enquiryId": id})
}

// List handles GET /v1/admin/enquiries?status=
func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	status := model.EnquiryStatus(r.URL.Query().Get("status"))

	enquiries, err := h.enquirySvc.List(r.Context(), status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"enquiries": enquiries})
}

// UpdateStatus handles PUT /v1/admin/enquiries/{enquiryId}/status
func (h *EnquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	enquiryID := mux.Vars(r)["enquiryId"]

	var req struct {
		Status model.EnquiryStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.enquirySvc.UpdateStatus(r.Context(), enquiryID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnquiryNotFound):
			writeError(w, http.StatusNotFound, "enquiry not found")
		case errors.Is(err, service.ErrInvalidEnquiryStatus):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}
