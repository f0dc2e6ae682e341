package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduforms/internal/model"
	"eduforms/internal/service"
)

type stubFormRepo struct {
	form *model.Form
}

func (r *stubFormRepo) Create(_ context.Context, f *model.Form) (string, error) {
	return f.ID, nil
}

func (r *stubFormRepo) GetByID(_ context.Context, id string) (*model.Form, error) {
	if r.form != nil && r.form.ID == id {
		return r.form, nil
	}
	return nil, nil
}

func (r *stubFormRepo) List(_ context.Context) ([]*model.Form, error) {
	return []*model.Form{r.form}, nil
}

func (r *stubFormRepo) Update(_ context.Context, f *model.Form) error { return nil }
func (r *stubFormRepo) Delete(_ context.Context, id string) error     { return nil }

type stubSubmissionRepo struct {
	created []*model.Submission
}

func (r *stubSubmissionRepo) Create(_ context.Context, s *model.Submission) (string, error) {
	r.created = append(r.created, s)
	return "sub-1", nil
}

func (r *stubSubmissionRepo) GetByID(_ context.Context, id string) (*model.Submission, error) {
	return nil, nil
}

func (r *stubSubmissionRepo) GetByFormID(_ context.Context, formID string) ([]*model.Submission, error) {
	return r.created, nil
}

func runnerRouter(formSvc *service.FormService) http.Handler {
	h := NewFormHandler(formSvc)
	r := mux.NewRouter()
	r.HandleFunc("/v1/forms/{formId}/info", h.Info).Methods("GET")
	r.HandleFunc("/v1/forms/{formId}/questions", h.Questions).Methods("GET")
	r.HandleFunc("/v1/forms/{formId}/resolve", h.Resolve).Methods("POST")
	r.HandleFunc("/v1/forms/{formId}/submissions", h.Submit).Methods("POST")
	return r
}

func testForm() *model.Form {
	return &model.Form{
		ID:       "f1",
		Title:    "Enrollment",
		Language: "en",
		Questions: []model.Question{
			{ID: "q_name", Type: model.QuestionTypeText, Label: "Name", IsRequired: true},
			{
				ID: "q_buyer", Type: model.QuestionTypeRadio, Label: "Buyer",
				Options: []string{"Myself", "My company"}, IsRequired: true,
				Rules: []model.Rule{{
					TargetQuestionIDs: []string{"q_company"},
					Conditions: []model.Condition{
						{QuestionID: "q_buyer", Value: "My company", Logic: model.LogicAnd},
					},
				}},
			},
			{ID: "q_company", Type: model.QuestionTypeText, Label: "Company", IsConditional: true},
		},
	}
}

func TestFormInfoNotFound(t *testing.T) {
	svc := service.NewFormService(&stubFormRepo{}, &stubSubmissionRepo{}, nil)

	req := httptest.NewRequest("GET", "/v1/forms/missing/info", nil)
	rec := httptest.NewRecorder()
	runnerRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormResolveRevealsConditional(t *testing.T) {
	svc := service.NewFormService(&stubFormRepo{form: testForm()}, &stubSubmissionRepo{}, nil)

	body := `{"answers":{"q_buyer":{"value":"My company"}}}`
	req := httptest.NewRequest("POST", "/v1/forms/f1/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	runnerRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Visible []struct {
			ID       string `json:"id"`
			Required bool   `json:"required"`
		} `json:"visible"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	ids := make(map[string]bool)
	for _, q := range resp.Visible {
		ids[q.ID] = q.Required
	}
	assert.Contains(t, ids, "q_company")
	assert.True(t, ids["q_company"], "revealed conditional should be required")
}

func TestFormSubmitReportsAllMissingFields(t *testing.T) {
	svc := service.NewFormService(&stubFormRepo{form: testForm()}, &stubSubmissionRepo{}, nil)

	body := `{"email":"a@b.co","answers":{}}`
	req := httptest.NewRequest("POST", "/v1/forms/f1/submissions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	runnerRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Fields, 2)
	assert.Contains(t, resp.Fields, "q_name")
	assert.Contains(t, resp.Fields, "q_buyer")
}

func TestFormSubmitAccepted(t *testing.T) {
	subs := &stubSubmissionRepo{}
	svc := service.NewFormService(&stubFormRepo{form: testForm()}, subs, nil)

	body := `{"email":"a@b.co","answers":{"q_name":{"value":"Ann"},"q_buyer":{"value":"Myself"}}}`
	req := httptest.NewRequest("POST", "/v1/forms/f1/submissions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	runnerRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, subs.created, 1)
	assert.Equal(t, "a@b.co", subs.created[0].Email)
}

func TestFormSubmitInvalidEmail(t *testing.T) {
	svc := service.NewFormService(&stubFormRepo{form: testForm()}, &stubSubmissionRepo{}, nil)

	body := `{"email":"not-an-email","answers":{}}`
	req := httptest.NewRequest("POST", "/v1/forms/f1/submissions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	runnerRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "email")
}
