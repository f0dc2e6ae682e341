package form

import "eduforms/internal/model"

// RequiredMessage is the error reported for every missing required answer
const RequiredMessage = "This field is required"

// Validate checks that every required visible question has a usable
// answer. It collects the full set of failures rather than stopping at
// the first one, keyed by question ID. An empty map means the submission
// may proceed.
func Validate(visible []ResolvedQuestion, answers model.AnswerSet) map[string]string {
	errs := make(map[string]string)
	for _, q := range visible {
		if !q.Required {
			continue
		}
		// Content blocks are display-only and carry no answer
		if q.Type == model.QuestionTypeContent {
			continue
		}
		v, ok := answers[q.ID]
		if q.Type == model.QuestionTypeFile {
			if !ok || v.File == nil {
				errs[q.ID] = RequiredMessage
			}
			continue
		}
		if !ok || v.IsEmpty() {
			errs[q.ID] = RequiredMessage
		}
	}
	return errs
}
