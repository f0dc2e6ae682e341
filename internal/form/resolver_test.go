package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eduforms/internal/model"
)

func textQuestion(id string, required bool) model.Question {
	return model.Question{ID: id, Type: model.QuestionTypeText, Label: id, IsRequired: required}
}

// questionsWithTrigger builds a form where answering A with "yes"
// reveals the conditional question B
func questionsWithTrigger() []model.Question {
	a := textQuestion("A", true)
	a.Rules = []model.Rule{{
		TargetQuestionIDs: []string{"B"},
		Conditions: []model.Condition{
			{QuestionID: "A", Value: "yes", Logic: model.LogicAnd},
		},
	}}
	b := textQuestion("B", false)
	b.IsConditional = true
	return []model.Question{a, b}
}

func visibleIDs(res Resolution) []string {
	ids := make([]string, 0, len(res.Visible))
	for _, q := range res.Visible {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestResolveUnconditionalAlwaysVisible(t *testing.T) {
	questions := []model.Question{textQuestion("A", false), textQuestion("B", true)}

	res := Resolve(questions, model.AnswerSet{})
	assert.Equal(t, []string{"A", "B"}, visibleIDs(res))

	res = Resolve(questions, model.AnswerSet{"A": {Text: "anything"}})
	assert.Equal(t, []string{"A", "B"}, visibleIDs(res))
}

func TestResolveUntargetedConditionalNeverVisible(t *testing.T) {
	orphan := textQuestion("C", false)
	orphan.IsConditional = true
	questions := []model.Question{textQuestion("A", false), orphan}

	res := Resolve(questions, model.AnswerSet{"A": {Text: "yes"}, "C": {Text: "stale"}})
	assert.Equal(t, []string{"A"}, visibleIDs(res))
	assert.NotContains(t, res.Answers, "C")
}

func TestResolveAndConditionRevealsAndHides(t *testing.T) {
	questions := questionsWithTrigger()

	res := Resolve(questions, model.AnswerSet{"A": {Text: "yes"}})
	assert.Equal(t, []string{"A", "B"}, visibleIDs(res))
	assert.True(t, res.Visible[1].Required, "revealed conditional question must be required")

	// Changing A away from "yes" hides B and prunes its answer
	res = Resolve(questions, model.AnswerSet{"A": {Text: "no"}, "B": {Text: "leftover"}})
	assert.Equal(t, []string{"A"}, visibleIDs(res))
	assert.NotContains(t, res.Answers, "B")
	assert.Contains(t, res.Answers, "A")
}

func TestResolveDoesNotMutateDefinitions(t *testing.T) {
	questions := questionsWithTrigger()

	Resolve(questions, model.AnswerSet{"A": {Text: "yes"}})
	assert.False(t, questions[1].IsRequired, "definitions must stay untouched")
}

func TestResolveIdempotent(t *testing.T) {
	questions := questionsWithTrigger()
	answers := model.AnswerSet{"A": {Text: "yes"}, "B": {Text: "kept"}}

	first := Resolve(questions, answers)
	second := Resolve(questions, first.Answers)

	assert.Equal(t, visibleIDs(first), visibleIDs(second))
	assert.Equal(t, first.Answers, second.Answers)
}

func TestResolveOrConditionMatchesByInequality(t *testing.T) {
	a := textQuestion("A", true)
	a.Rules = []model.Rule{{
		TargetQuestionIDs: []string{"B"},
		Conditions: []model.Condition{
			{QuestionID: "A", Value: "none", Logic: model.LogicOr},
		},
	}}
	b := textQuestion("B", false)
	b.IsConditional = true
	questions := []model.Question{a, b}

	// OR conditions fire when the answer differs from the value
	res := Resolve(questions, model.AnswerSet{"A": {Text: "something"}})
	assert.Equal(t, []string{"A", "B"}, visibleIDs(res))

	res = Resolve(questions, model.AnswerSet{"A": {Text: "none"}})
	assert.Equal(t, []string{"A"}, visibleIDs(res))
}

func TestResolveMixedAndOrRule(t *testing.T) {
	a := textQuestion("A", true)
	c := textQuestion("C", true)
	a.Rules = []model.Rule{{
		TargetQuestionIDs: []string{"B"},
		Conditions: []model.Condition{
			{QuestionID: "A", Value: "yes", Logic: model.LogicAnd},
			{QuestionID: "C", Value: "skip", Logic: model.LogicOr},
		},
	}}
	b := textQuestion("B", false)
	b.IsConditional = true
	questions := []model.Question{a, b, c}

	// AND must hold by equality, OR by inequality
	res := Resolve(questions, model.AnswerSet{"A": {Text: "yes"}, "C": {Text: "other"}})
	assert.Contains(t, visibleIDs(res), "B")

	res = Resolve(questions, model.AnswerSet{"A": {Text: "yes"}, "C": {Text: "skip"}})
	assert.NotContains(t, visibleIDs(res), "B")

	res = Resolve(questions, model.AnswerSet{"A": {Text: "no"}, "C": {Text: "other"}})
	assert.NotContains(t, visibleIDs(res), "B")
}

func TestResolveEmptyConditionsRuleIsUnsatisfiable(t *testing.T) {
	a := textQuestion("A", true)
	a.Rules = []model.Rule{{TargetQuestionIDs: []string{"B"}}}
	b := textQuestion("B", false)
	b.IsConditional = true
	questions := []model.Question{a, b}

	res := Resolve(questions, model.AnswerSet{"A": {Text: "yes"}})
	assert.NotContains(t, visibleIDs(res), "B")
}

func TestResolveListAnswerMatchesByMembership(t *testing.T) {
	a := model.Question{ID: "A", Type: model.QuestionTypeCheckbox, Options: []string{"x", "y"}}
	a.Rules = []model.Rule{{
		TargetQuestionIDs: []string{"B"},
		Conditions: []model.Condition{
			{QuestionID: "A", Value: "y", Logic: model.LogicAnd},
		},
	}}
	b := textQuestion("B", false)
	b.IsConditional = true
	questions := []model.Question{a, b}

	res := Resolve(questions, model.AnswerSet{"A": {List: []string{"x", "y"}}})
	assert.Contains(t, visibleIDs(res), "B")

	res = Resolve(questions, model.AnswerSet{"A": {List: []string{"x"}}})
	assert.NotContains(t, visibleIDs(res), "B")
}
