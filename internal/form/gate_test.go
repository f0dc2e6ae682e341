package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eduforms/internal/model"
)

func TestValidateAllAnswered(t *testing.T) {
	visible := []ResolvedQuestion{
		{Question: textQuestion("name", true), Required: true},
		{Question: model.Question{ID: "topics", Type: model.QuestionTypeMultiSelect}, Required: true},
	}
	answers := model.AnswerSet{
		"name":   {Text: "Ada"},
		"topics": {List: []string{"go"}},
	}

	assert.Empty(t, Validate(visible, answers))
}

func TestValidateReportsAllMissing(t *testing.T) {
	visible := []ResolvedQuestion{
		{Question: textQuestion("name", true), Required: true},
		{Question: textQuestion("city", true), Required: true},
		{Question: textQuestion("note", false), Required: false},
	}
	answers := model.AnswerSet{"name": {Text: ""}}

	errs := Validate(visible, answers)
	assert.Len(t, errs, 2)
	assert.Equal(t, RequiredMessage, errs["name"])
	assert.Equal(t, RequiredMessage, errs["city"])
	assert.NotContains(t, errs, "note")
}

func TestValidateFileRequiresFileHandle(t *testing.T) {
	visible := []ResolvedQuestion{
		{Question: model.Question{ID: "cv", Type: model.QuestionTypeFile}, Required: true},
	}

	errs := Validate(visible, model.AnswerSet{"cv": {Text: "not-a-file"}})
	assert.Contains(t, errs, "cv")

	errs = Validate(visible, model.AnswerSet{
		"cv": {File: &model.FileUpload{Name: "cv.pdf", Data: []byte("x")}},
	})
	assert.Empty(t, errs)
}

func TestValidateSkipsContentBlocks(t *testing.T) {
	visible := []ResolvedQuestion{
		{Question: model.Question{ID: "intro", Type: model.QuestionTypeContent}, Required: true},
	}

	assert.Empty(t, Validate(visible, model.AnswerSet{}))
}
