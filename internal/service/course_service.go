package service

import (
	"context"
	"errors"

	"eduforms/internal/model"
	"eduforms/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService handles course CRUD operations
type CourseService struct {
	courseRepo repository.CourseRepo
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo repository.CourseRepo) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// Create creates a new course
func (s *CourseService) Create(ctx context.Context, course *model.Course) (string, error) {
	return s.courseRepo.Create(ctx, course)
}

// GetByID retrieves a course by ID
func (s *CourseService) GetByID(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// List retrieves courses; publishedOnly hides drafts from the public site
func (s *CourseService) List(ctx context.Context, publishedOnly bool) ([]*model.Course, error) {
	return s.courseRepo.List(ctx, publishedOnly)
}

// Update updates an existing course
func (s *CourseService) Update(ctx context.Context, course *model.Course) error {
	return s.courseRepo.Update(ctx, course)
}

// Delete deletes a course
func (s *CourseService) Delete(ctx context.Context, id string) error {
	return s.courseRepo.Delete(ctx, id)
}
