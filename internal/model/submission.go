package model

import "time"

// FileData is the encoded content of a file answer on the wire
type FileData struct {
	Base64      string `json:"base64" bson:"base64"`
	ContentType string `json:"contentType" bson:"contentType"`
}

// SubmissionEntry is one answered question in a submission payload
type SubmissionEntry struct {
	QuestionID       string      `json:"questionId" bson:"questionId"`
	Answer           interface{} `json:"answer,omitempty" bson:"answer,omitempty"`
	IsFile           bool        `json:"isFile" bson:"isFile"`
	FileData         *FileData   `json:"fileData,omitempty" bson:"fileData,omitempty"`
	FileName         string      `json:"fileName,omitempty" bson:"fileName,omitempty"`
	IsUsedForInvoice bool        `json:"isUsedForInvoice" bson:"isUsedForInvoice"`
}

// SubmissionPayload is what the runner sends on submit
type SubmissionPayload struct {
	FormID      string            `json:"formId" bson:"formId"`
	Email       string            `json:"email" bson:"email"`
	Submissions []SubmissionEntry `json:"submissions" bson:"submissions"`
}

// Submission is a stored, accepted payload
type Submission struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	FormID    string            `json:"formId" bson:"formId"`
	Email     string            `json:"email" bson:"email"`
	Entries   []SubmissionEntry `json:"entries" bson:"entries"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
}
