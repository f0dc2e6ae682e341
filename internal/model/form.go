package model

import "time"

// QuestionType defines the input widget a question renders as
type QuestionType string

const (
	QuestionTypeText        QuestionType = "text"
	QuestionTypeEmail       QuestionType = "email"
	QuestionTypeNumber      QuestionType = "number"
	QuestionTypePhone       QuestionType = "phone"
	QuestionTypeTextarea    QuestionType = "textarea"
	QuestionTypeSelect      QuestionType = "select"
	QuestionTypeRadio       QuestionType = "radio"
	QuestionTypeCheckbox    QuestionType = "checkbox"
	QuestionTypeMultiSelect QuestionType = "multiselect"
	QuestionTypeDate        QuestionType = "date"
	QuestionTypeFile        QuestionType = "file"
	QuestionTypeContent     QuestionType = "content" // Display-only block, never answered
	QuestionTypeAccept      QuestionType = "accept"  // Terms checkbox
)

// KnownQuestionTypes lists every type the runner understands. Forms may
// still carry unknown types; clients render those as inert placeholders.
var KnownQuestionTypes = []QuestionType{
	QuestionTypeText, QuestionTypeEmail, QuestionTypeNumber, QuestionTypePhone,
	QuestionTypeTextarea, QuestionTypeSelect, QuestionTypeRadio, QuestionTypeCheckbox,
	QuestionTypeMultiSelect, QuestionTypeDate, QuestionTypeFile, QuestionTypeContent,
	QuestionTypeAccept,
}

// ConditionLogic tags how a single condition participates in its rule
type ConditionLogic string

const (
	LogicAnd ConditionLogic = "AND"
	LogicOr  ConditionLogic = "OR"
)

// Condition compares a trigger question's current answer against a value
type Condition struct {
	QuestionID string         `json:"questionId" bson:"questionId"`
	Value      string         `json:"value" bson:"value"`
	Logic      ConditionLogic `json:"logic" bson:"logic"`
}

// Rule belongs to a trigger question and reveals its target questions
// when its conditions are satisfied by the current answers
type Rule struct {
	TargetQuestionIDs []string    `json:"targetQuestionIds" bson:"targetQuestionIds"`
	Conditions        []Condition `json:"conditions" bson:"conditions"`
}

// Question is one entry in a form's ordered question list
type Question struct {
	ID               string       `json:"id" bson:"id"`
	Type             QuestionType `json:"type" bson:"type"`
	Label            string       `json:"label" bson:"label"`
	Options          []string     `json:"options,omitempty" bson:"options,omitempty"`
	IsConditional    bool         `json:"isConditional" bson:"isConditional"`
	IsRequired       bool         `json:"isRequired" bson:"isRequired"`
	IsUsedForInvoice bool         `json:"isUsedForInvoice" bson:"isUsedForInvoice"`
	Rules            []Rule       `json:"rules,omitempty" bson:"rules,omitempty"`
}

// Form is a persistent form template created by an admin
type Form struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	HasLogo     bool       `json:"hasLogo" bson:"hasLogo"`
	Language    string     `json:"language" bson:"language"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// FormInfo is the public metadata served to the form runner
type FormInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	HasLogo     bool   `json:"hasLogo"`
	Language    string `json:"language"`
}

// Info projects the runner-facing metadata
func (f *Form) Info() FormInfo {
	return FormInfo{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		HasLogo:     f.HasLogo,
		Language:    f.Language,
	}
}
