package model

// FileUpload is a selected file answer before encoding. Data may hold raw
// bytes or, when the client sends a data URI, the base64 text including
// the "data:...;base64," prefix.
type FileUpload struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// AnswerValue holds one answer: a scalar, a selection list, or a file.
// Exactly one of the fields is expected to be set.
type AnswerValue struct {
	Text string      `json:"value,omitempty"`
	List []string    `json:"values,omitempty"`
	File *FileUpload `json:"file,omitempty"`
}

// IsEmpty reports whether the value is usable as a required answer
func (v AnswerValue) IsEmpty() bool {
	return v.Text == "" && len(v.List) == 0 && v.File == nil
}

// Matches reports whether the answer equals the condition value. List
// answers match when any selected element equals it; files never match.
func (v AnswerValue) Matches(value string) bool {
	if v.Text != "" {
		return v.Text == value
	}
	for _, s := range v.List {
		if s == value {
			return true
		}
	}
	return false
}

// AnswerSet maps question IDs to their current answers
type AnswerSet map[string]AnswerValue

// Matches reports whether the answer for id equals value. A missing
// answer matches nothing.
func (a AnswerSet) Matches(id, value string) bool {
	v, ok := a[id]
	if !ok {
		return false
	}
	return v.Matches(value)
}
