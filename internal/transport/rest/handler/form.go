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

// FormHandler handles the public form runner endpoints
type FormHandler struct {
	formSvc *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formSvc *service.FormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

// Info handles GET /v1/forms/{formId}/info
func (h *FormHandler) Info(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	info, err := h.formSvc.Info(r.Context(), formID)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			writeError(w, http.StatusNotFound, "form not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// Questions handles GET /v1/forms/{formId}/questions
func (h *FormHandler) Questions(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	questions, err := h.formSvc.Questions(r.Context(), formID)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			writeError(w, http.StatusNotFound, "form not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// ResolveRequest carries the current answers for a visibility refresh
type ResolveRequest struct {
	Answers model.AnswerSet `json:"answers"`
}

// Resolve handles POST /v1/forms/{formId}/resolve. Clients call it after
// each answer change to refresh the visible set and pruned answers.
func (h *FormHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.formSvc.Resolve(r.Context(), formID, req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			writeError(w, http.StatusNotFound, "form not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// SubmitRequest is the request body for a form submission
type SubmitRequest struct {
	Email   string          `json:"email" validate:"required,email"`
	Answers model.AnswerSet `json:"answers"`
}

// Submit handles POST /v1/forms/{formId}/submissions
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Struct(req); errs != nil {
		writeFieldErrors(w, "invalid submission", errs)
		return
	}

	id, err := h.formSvc.Submit(r.Context(), formID, req.Email, req.Answers)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeFieldErrors(w, "missing required answers", verr.Fields)
		case errors.Is(err, service.ErrFormNotFound):
			writeError(w, http.StatusNotFound, "form not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"submissionId": id})
}
