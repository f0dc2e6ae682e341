package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"eduforms/internal/cache"
	"eduforms/internal/form"
	"eduforms/internal/model"
	"eduforms/internal/repository"
)

var (
	ErrFormNotFound = errors.New("form not found")
)

// ValidationError reports per-question failures so the client can
// highlight every offending field at once
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission rejected: %d invalid fields", len(e.Fields))
}

// FormService drives the form runner: question loading, conditional
// visibility, validation and submission building. It also backs the
// admin form builder.
type FormService struct {
	formRepo repository.FormRepo
	subRepo  repository.SubmissionRepo
	cache    cache.FormCache
}

// NewFormService creates a new form service
func NewFormService(formRepo repository.FormRepo, subRepo repository.SubmissionRepo, formCache cache.FormCache) *FormService {
	return &FormService{
		formRepo: formRepo,
		subRepo:  subRepo,
		cache:    formCache,
	}
}

// Info returns the runner-facing form metadata
func (s *FormService) Info(ctx context.Context, formID string) (*model.FormInfo, error) {
	f, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFormNotFound
	}
	info := f.Info()
	return &info, nil
}

// Questions returns the ordered question list, cache-aside
func (s *FormService) Questions(ctx context.Context, formID string) ([]model.Question, error) {
	if s.cache != nil {
		if questions, err := s.cache.GetQuestions(ctx, formID); err == nil {
			return questions, nil
		}
	}

	f, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFormNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetQuestions(ctx, formID, f.Questions); err != nil {
			log.Printf("form cache write failed for %s: %v", formID, err)
		}
	}
	return f.Questions, nil
}

// Resolve runs one visibility pass for the runner so clients can refresh
// the visible set after each answer change
func (s *FormService) Resolve(ctx context.Context, formID string, answers model.AnswerSet) (form.Resolution, error) {
	questions, err := s.Questions(ctx, formID)
	if err != nil {
		return form.Resolution{}, err
	}
	return form.Resolve(questions, answers), nil
}

// Submit validates and stores a submission. The pipeline mirrors the
// runner: resolve visibility, prune, gate required answers, bound file
// sizes, then build and persist the payload.
func (s *FormService) Submit(ctx context.Context, formID, email string, answers model.AnswerSet) (string, error) {
	questions, err := s.Questions(ctx, formID)
	if err != nil {
		return "", err
	}

	res := form.Resolve(questions, answers)

	fieldErrs := form.Validate(res.Visible, res.Answers)
	for id, msg := range form.CheckFileSizes(res.Answers) {
		fieldErrs[id] = msg
	}
	if len(fieldErrs) > 0 {
		return "", &ValidationError{Fields: fieldErrs}
	}

	payload, err := form.Build(formID, email, questions, res.Answers)
	if err != nil {
		return "", err
	}

	sub := &model.Submission{
		FormID:  formID,
		Email:   email,
		Entries: payload.Submissions,
	}
	return s.subRepo.Create(ctx, sub)
}

// Submissions lists a form's stored submissions for the admin view
func (s *FormService) Submissions(ctx context.Context, formID string) ([]*model.Submission, error) {
	return s.subRepo.GetByFormID(ctx, formID)
}

// CreateForm stores a new form template after checking rule integrity
func (s *FormService) CreateForm(ctx context.Context, f *model.Form) (string, error) {
	if err := checkRuleTargets(f.Questions); err != nil {
		return "", err
	}
	return s.formRepo.Create(ctx, f)
}

// UpdateForm replaces a form template and drops its cached questions
func (s *FormService) UpdateForm(ctx context.Context, f *model.Form) error {
	if err := checkRuleTargets(f.Questions); err != nil {
		return err
	}
	if err := s.formRepo.Update(ctx, f); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, f.ID); err != nil {
			log.Printf("form cache invalidation failed for %s: %v", f.ID, err)
		}
	}
	return nil
}

// GetForm returns the full template for the admin builder
func (s *FormService) GetForm(ctx context.Context, formID string) (*model.Form, error) {
	f, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFormNotFound
	}
	return f, nil
}

// ListForms returns every form template
func (s *FormService) ListForms(ctx context.Context) ([]*model.Form, error) {
	return s.formRepo.List(ctx)
}

// DeleteForm removes a template and its cached questions
func (s *FormService) DeleteForm(ctx context.Context, formID string) error {
	if err := s.formRepo.Delete(ctx, formID); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, formID); err != nil {
			log.Printf("form cache invalidation failed for %s: %v", formID, err)
		}
	}
	return nil
}

// checkRuleTargets rejects templates whose rules point at question IDs
// that don't exist in the same form
func checkRuleTargets(questions []model.Question) error {
	ids := make(map[string]bool, len(questions))
	for _, q := range questions {
		ids[q.ID] = true
	}
	for _, q := range questions {
		for _, r := range q.Rules {
			for _, target := range r.TargetQuestionIDs {
				if !ids[target] {
					return fmt.Errorf("question %s: rule targets unknown question %s", q.ID, target)
				}
			}
			for _, c := range r.Conditions {
				if !ids[c.QuestionID] {
					return fmt.Errorf("question %s: condition references unknown question %s", q.ID, c.QuestionID)
				}
			}
		}
	}
	return nil
}
