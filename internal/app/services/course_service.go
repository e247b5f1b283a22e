package services

import (
	"context"
	"strings"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/pkg/apperrors"
)

// courseStore is the store view consumed by the course service.
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, search string) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course management
type CourseService struct {
	courseRepo courseStore
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo courseStore) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// Create defines a new course with its certificate template
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Duration) == "" ||
		strings.TrimSpace(req.Template) == "" {
		return nil, apperrors.NewValidationError("title, duration, start date, end date, and template are required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, apperrors.NewValidationError("start date and end date are required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("end date cannot precede start date")
	}

	course := &models.Course{
		Title:       req.Title,
		Duration:    req.Duration,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Template:    req.Template,
		Description: req.Description,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetByID retrieves a course by internal key
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetAll retrieves courses with an optional title search
func (s *CourseService) GetAll(ctx context.Context, search string) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, search)
}

// Update applies a partial update to a course. Nil request fields keep their
// current value.
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		course.Title = *req.Title
	}
	if req.Duration != nil && strings.TrimSpace(*req.Duration) != "" {
		course.Duration = *req.Duration
	}
	if req.StartDate != nil {
		course.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		course.EndDate = *req.EndDate
	}
	if req.Template != nil && strings.TrimSpace(*req.Template) != "" {
		course.Template = *req.Template
	}
	if req.Description != nil {
		course.Description = req.Description
	}

	if course.EndDate.Before(course.StartDate) {
		return nil, apperrors.NewValidationError("end date cannot precede start date")
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a course and, via the store's cascade, all credentials
// referencing it. Returns the removed row.
func (s *CourseService) Delete(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return course, nil
}
