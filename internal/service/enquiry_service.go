package service

import (
	"context"
	"errors"

	"eduforms/internal/model"
	"eduforms/internal/repository"
)

var (
	ErrEnquiryNotFound      = errors.New("enquiry not found")
	ErrInvalidEnquiryStatus = errors.New("invalid enquiry status")
)

// EnquiryService handles contact enquiries and their admin workflow
type EnquiryService struct {
	enquiryRepo repository.EnquiryRepo
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(enquiryRepo repository.EnquiryRepo) *EnquiryService {
	return &EnquiryService{
		enquiryRepo: enquiryRepo,
	}
}

// Create stores a new enquiry from the public site
func (s *EnquiryService) Create(ctx context.Context, enquiry *model.Enquiry) (string, error) {
	return s.enquiryRepo.Create(ctx, enquiry)
}

// List retrieves enquiries, optionally filtered by status
func (s *EnquiryService) List(ctx context.Context, status model.EnquiryStatus) ([]*model.Enquiry, error) {
	return s.enquiryRepo.List(ctx, status)
}

// UpdateStatus moves an enquiry through the workflow
func (s *EnquiryService) UpdateStatus(ctx context.Context, id string, status model.EnquiryStatus) error {
	switch status {
	case model.EnquiryStatusNew, model.EnquiryStatusSeen, model.EnquiryStatusClosed:
	default:
		return ErrInvalidEnquiryStatus
	}

	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if enquiry == nil {
		return ErrEnquiryNotFound
	}

	return s.enquiryRepo.UpdateStatus(ctx, id, status)
}
