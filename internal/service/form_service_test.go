package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduforms/internal/form"
	"eduforms/internal/model"
)

func seedForm(t *testing.T, repo *fakeFormRepo) string {
	t.Helper()

	company := model.Question{
		ID: "company", Type: model.QuestionTypeText, Label: "Company name",
		IsConditional: true, IsUsedForInvoice: true,
	}
	business := model.Question{
		ID: "business", Type: model.QuestionTypeRadio, Label: "Ordering as a business?",
		Options: []string{"yes", "no"}, IsRequired: true,
		Rules: []model.Rule{{
			TargetQuestionIDs: []string{"company"},
			Conditions: []model.Condition{
				{QuestionID: "business", Value: "yes", Logic: model.LogicAnd},
			},
		}},
	}
	name := model.Question{ID: "name", Type: model.QuestionTypeText, Label: "Your name", IsRequired: true}

	id, err := repo.Create(context.Background(), &model.Form{
		Title:     "Enrollment",
		Questions: []model.Question{name, business, company},
	})
	require.NoError(t, err)
	return id
}

func TestSubmitHappyPath(t *testing.T) {
	formRepo := newFakeFormRepo()
	subRepo := newFakeSubmissionRepo()
	svc := NewFormService(formRepo, subRepo, nil)
	formID := seedForm(t, formRepo)

	id, err := svc.Submit(context.Background(), formID, "ada@example.com", model.AnswerSet{
		"name":     {Text: "Ada"},
		"business": {Text: "yes"},
		"company":  {Text: "ACME"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sub, err := subRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", sub.Email)
	assert.Len(t, sub.Entries, 3)
	assert.Equal(t, "name", sub.Entries[0].QuestionID)
	assert.True(t, sub.Entries[2].IsUsedForInvoice)
}

func TestSubmitCollectsAllMissingFields(t *testing.T) {
	formRepo := newFakeFormRepo()
	svc := NewFormService(formRepo, newFakeSubmissionRepo(), nil)
	formID := seedForm(t, formRepo)

	// Revealed conditional question left blank alongside a blank name
	_, err := svc.Submit(context.Background(), formID, "ada@example.com", model.AnswerSet{
		"business": {Text: "yes"},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "company")
}

func TestSubmitDropsHiddenAnswers(t *testing.T) {
	formRepo := newFakeFormRepo()
	subRepo := newFakeSubmissionRepo()
	svc := NewFormService(formRepo, subRepo, nil)
	formID := seedForm(t, formRepo)

	// "company" was answered but its trigger flipped to "no"
	id, err := svc.Submit(context.Background(), formID, "ada@example.com", model.AnswerSet{
		"name":     {Text: "Ada"},
		"business": {Text: "no"},
		"company":  {Text: "stale"},
	})
	require.NoError(t, err)

	sub, err := subRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	for _, e := range sub.Entries {
		assert.NotEqual(t, "company", e.QuestionID)
	}
}

func TestSubmitRejectsOversizedFile(t *testing.T) {
	formRepo := newFakeFormRepo()
	svc := NewFormService(formRepo, newFakeSubmissionRepo(), nil)

	formID, err := formRepo.Create(context.Background(), &model.Form{
		Title: "Upload",
		Questions: []model.Question{
			{ID: "cv", Type: model.QuestionTypeFile, IsRequired: true},
		},
	})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), formID, "ada@example.com", model.AnswerSet{
		"cv": {File: &model.FileUpload{Name: "huge.bin", Size: form.MaxFileSize + 1}},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "cv")
}

func TestSubmitUnknownForm(t *testing.T) {
	svc := NewFormService(newFakeFormRepo(), newFakeSubmissionRepo(), nil)

	_, err := svc.Submit(context.Background(), "missing", "a@b.c", model.AnswerSet{})
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestCreateFormRejectsDanglingRuleTargets(t *testing.T) {
	svc := NewFormService(newFakeFormRepo(), newFakeSubmissionRepo(), nil)

	_, err := svc.CreateForm(context.Background(), &model.Form{
		Title: "Broken",
		Questions: []model.Question{
			{ID: "a", Type: model.QuestionTypeText, Rules: []model.Rule{{
				TargetQuestionIDs: []string{"ghost"},
				Conditions: []model.Condition{
					{QuestionID: "a", Value: "x", Logic: model.LogicAnd},
				},
			}}},
		},
	})
	assert.Error(t, err)
}
