package form

import "eduforms/internal/model"

// ResolvedQuestion pairs a question definition with its derived required
// flag. Conditional questions are always required once revealed.
type ResolvedQuestion struct {
	model.Question
	Required bool `json:"required"`
}

// Resolution is the outcome of one visibility pass
type Resolution struct {
	Visible []ResolvedQuestion `json:"visible"`
	Answers model.AnswerSet    `json:"answers"`
}

// Resolve computes the visible question subset for the current answers
// and returns a pruned copy of the answer set holding only entries for
// visible questions. Inputs are never mutated, so resolving twice with
// unchanged answers yields the same result.
func Resolve(questions []model.Question, answers model.AnswerSet) Resolution {
	visible := make([]ResolvedQuestion, 0, len(questions))
	shown := make(map[string]bool, len(questions))

	for _, q := range questions {
		if !q.IsConditional {
			visible = append(visible, ResolvedQuestion{Question: q, Required: q.IsRequired})
			shown[q.ID] = true
			continue
		}
		if revealed(q.ID, questions, answers) {
			visible = append(visible, ResolvedQuestion{Question: q, Required: true})
			shown[q.ID] = true
		}
	}

	pruned := make(model.AnswerSet, len(answers))
	for id, v := range answers {
		if shown[id] {
			pruned[id] = v
		}
	}

	return Resolution{Visible: visible, Answers: pruned}
}

// revealed reports whether any rule across the whole form targets the
// question and is satisfied by the current answers
func revealed(questionID string, questions []model.Question, answers model.AnswerSet) bool {
	for _, q := range questions {
		for _, r := range q.Rules {
			if !targets(r, questionID) {
				continue
			}
			if ruleSatisfied(r, answers) {
				return true
			}
		}
	}
	return false
}

func targets(r model.Rule, questionID string) bool {
	for _, id := range r.TargetQuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}

// ruleSatisfied evaluates a rule's conditions against the current
// answers. Every AND condition must match the trigger answer by
// equality; when OR conditions are present at least one must differ from
// its value. A rule with no conditions is unsatisfiable.
func ruleSatisfied(r model.Rule, answers model.AnswerSet) bool {
	if len(r.Conditions) == 0 {
		return false
	}
	hasOr := false
	orHit := false
	for _, c := range r.Conditions {
		match := answers.Matches(c.QuestionID, c.Value)
		if c.Logic == model.LogicAnd {
			if !match {
				return false
			}
		} else {
			hasOr = true
			if !match {
				orHit = true
			}
		}
	}
	return !hasOr || orHit
}
