package form

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"eduforms/internal/model"
)

// MaxFileSize bounds a single file answer before encoding (5MB)
const MaxFileSize = 5 << 20

var (
	// ErrFileTooLarge is returned before any encoding happens
	ErrFileTooLarge = errors.New("file exceeds the 5MB limit")

	errMalformedDataURI = errors.New("malformed data URI in file answer")
)

// CheckFileSizes rejects answers whose file content exceeds MaxFileSize.
// Returns the offending question IDs mapped to a fixed message, in the
// same shape as Validate so callers can merge the two.
func CheckFileSizes(answers model.AnswerSet) map[string]string {
	errs := make(map[string]string)
	for id, v := range answers {
		if v.File == nil {
			continue
		}
		size := v.File.Size
		if size == 0 {
			size = int64(len(v.File.Data))
		}
		if size > MaxFileSize {
			errs[id] = ErrFileTooLarge.Error()
		}
	}
	return errs
}

// Build packages the pruned answers into the submission payload. Entries
// follow the order of the question definitions; questions without an
// answer are skipped. File answers are embedded as base64 text with any
// data-URI prefix stripped, everything else is passed through as-is.
func Build(formID, email string, questions []model.Question, answers model.AnswerSet) (model.SubmissionPayload, error) {
	payload := model.SubmissionPayload{
		FormID:      formID,
		Email:       email,
		Submissions: make([]model.SubmissionEntry, 0, len(answers)),
	}

	for _, q := range questions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}

		if q.Type == model.QuestionTypeFile && v.File != nil {
			encoded, err := encodeFile(v.File)
			if err != nil {
				return model.SubmissionPayload{}, fmt.Errorf("question %s: %w", q.ID, err)
			}
			payload.Submissions = append(payload.Submissions, model.SubmissionEntry{
				QuestionID: q.ID,
				IsFile:     true,
				FileData: &model.FileData{
					Base64:      encoded,
					ContentType: v.File.ContentType,
				},
				FileName:         v.File.Name,
				IsUsedForInvoice: q.IsUsedForInvoice,
			})
			continue
		}

		payload.Submissions = append(payload.Submissions, model.SubmissionEntry{
			QuestionID:       q.ID,
			Answer:           answerValue(v),
			IsFile:           false,
			IsUsedForInvoice: q.IsUsedForInvoice,
		})
	}

	return payload, nil
}

// encodeFile returns the base64 content of a file answer without the
// "data:...;base64," prefix. Raw bytes are encoded; data URIs are
// stripped down to their base64 tail.
func encodeFile(f *model.FileUpload) (string, error) {
	s := string(f.Data)
	if strings.HasPrefix(s, "data:") {
		idx := strings.Index(s, "base64,")
		if idx < 0 {
			return "", errMalformedDataURI
		}
		return s[idx+len("base64,"):], nil
	}
	return base64.StdEncoding.EncodeToString(f.Data), nil
}

// answerValue flattens an AnswerValue for the wire: list answers stay
// lists, everything else is the scalar text
func answerValue(v model.AnswerValue) interface{} {
	if len(v.List) > 0 {
		return v.List
	}
	return v.Text
}
