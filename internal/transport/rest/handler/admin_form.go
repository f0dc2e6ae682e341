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

// AdminFormHandler handles the form builder endpoints
type AdminFormHandler struct {
	formSvc *service.FormService
}

// NewAdminFormHandler creates a new admin form handler
func NewAdminFormHandler(formSvc *service.FormService) *AdminFormHandler {
	return &AdminFormHandler{formSvc: formSvc}
}

// FormRequest is the request body for creating or updating a form
type FormRequest struct {
	Title       string           `json:"title" validate:"notblank"`
	Description string           `json:"description"`
	HasLogo     bool             `json:"hasLogo"`
	Language    string           `json:"language"`
	Questions   []model.Question `json:"questions" validate:"required,min=1,dive"`
}

// Create handles POST /v1/admin/forms
func (h *AdminFormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid form", errs)
		return
	}

	id, err := h.formSvc.CreateForm(r.Context(), &model.Form{
		Title:       req.Title,
		Description: req.Description,
		HasLogo:     req.HasLogo,
		Language:    req.Language,
		Questions:   req.Questions,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"formId": id})
}

// Update handles PUT /v1/admin/forms/{formId}
func (h *AdminFormHandler) Update(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid form", errs)
		return
	}

	form := &model.Form{
		ID:          formID,
		Title:       req.Title,
		Description: req.Description,
		HasLogo:     req.HasLogo,
		Language:    req.Language,
		Questions:   req.Questions,
	}
	if err := h.formSvc.UpdateForm(r.Context(), form); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Get handles GET /v1/admin/forms/{formId}
func (h *AdminFormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.formSvc.GetForm(r.Context(), formID)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			writeError(w, http.StatusNotFound, "form not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// List handles GET /v1/admin/forms
func (h *AdminFormHandler) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.formSvc.ListForms(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"forms": forms})
}

// Delete handles DELETE /v1/admin/forms/{formId}
func (h *AdminFormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	if err := h.formSvc.DeleteForm(r.Context(), formID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Submissions handles GET /v1/admin/forms/{formId}/submissions
func (h *AdminFormHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	subs, err := h.formSvc.Submissions(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"submissions": subs})
}
