package form

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduforms/internal/model"
)

func TestBuildTextAnswer(t *testing.T) {
	questions := []model.Question{textQuestion("greeting", true)}
	answers := model.AnswerSet{"greeting": {Text: "hello"}}

	payload, err := Build("form-1", "a@b.c", questions, answers)
	require.NoError(t, err)

	assert.Equal(t, "form-1", payload.FormID)
	assert.Equal(t, "a@b.c", payload.Email)
	require.Len(t, payload.Submissions, 1)

	entry := payload.Submissions[0]
	assert.Equal(t, "greeting", entry.QuestionID)
	assert.Equal(t, "hello", entry.Answer)
	assert.False(t, entry.IsFile)
	assert.Nil(t, entry.FileData)
}

func TestBuildFileAnswerFromRawBytes(t *testing.T) {
	questions := []model.Question{{ID: "cv", Type: model.QuestionTypeFile}}
	raw := []byte{0x25, 0x50, 0x44, 0x46}
	answers := model.AnswerSet{"cv": {File: &model.FileUpload{
		Name:        "resume.pdf",
		ContentType: "application/pdf",
		Data:        raw,
	}}}

	payload, err := Build("form-1", "a@b.c", questions, answers)
	require.NoError(t, err)
	require.Len(t, payload.Submissions, 1)

	entry := payload.Submissions[0]
	assert.True(t, entry.IsFile)
	assert.Equal(t, "resume.pdf", entry.FileName)
	require.NotNil(t, entry.FileData)
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), entry.FileData.Base64)
	assert.Equal(t, "application/pdf", entry.FileData.ContentType)
}

func TestBuildStripsDataURIPrefix(t *testing.T) {
	questions := []model.Question{{ID: "cv", Type: model.QuestionTypeFile}}
	answers := model.AnswerSet{"cv": {File: &model.FileUpload{
		Name:        "photo.png",
		ContentType: "image/png",
		Data:        []byte("data:image/png;base64,aGVsbG8="),
	}}}

	payload, err := Build("form-1", "a@b.c", questions, answers)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", payload.Submissions[0].FileData.Base64)
}

func TestBuildRejectsMalformedDataURI(t *testing.T) {
	questions := []model.Question{{ID: "cv", Type: model.QuestionTypeFile}}
	answers := model.AnswerSet{"cv": {File: &model.FileUpload{
		Name: "broken",
		Data: []byte("data:image/png;notbase64"),
	}}}

	_, err := Build("form-1", "a@b.c", questions, answers)
	assert.Error(t, err)
}

func TestBuildCopiesInvoiceFlagAndKeepsOrder(t *testing.T) {
	q1 := textQuestion("company", true)
	q1.IsUsedForInvoice = true
	q2 := model.Question{ID: "topics", Type: model.QuestionTypeMultiSelect}
	questions := []model.Question{q1, q2}

	answers := model.AnswerSet{
		"topics":  {List: []string{"go", "web"}},
		"company": {Text: "ACME"},
	}

	payload, err := Build("form-1", "a@b.c", questions, answers)
	require.NoError(t, err)
	require.Len(t, payload.Submissions, 2)

	assert.Equal(t, "company", payload.Submissions[0].QuestionID)
	assert.True(t, payload.Submissions[0].IsUsedForInvoice)
	assert.Equal(t, "topics", payload.Submissions[1].QuestionID)
	assert.Equal(t, []string{"go", "web"}, payload.Submissions[1].Answer)
	assert.False(t, payload.Submissions[1].IsUsedForInvoice)
}

func TestCheckFileSizes(t *testing.T) {
	answers := model.AnswerSet{
		"small": {File: &model.FileUpload{Name: "ok.txt", Size: 1024}},
		"big":   {File: &model.FileUpload{Name: "huge.bin", Size: MaxFileSize + 1}},
		"text":  {Text: "not a file"},
	}

	errs := CheckFileSizes(answers)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "big")
}
