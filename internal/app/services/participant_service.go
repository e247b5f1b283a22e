package services

import (
	"context"
	"strings"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/identifier"
)

// participantStore is the store view consumed by the participant service.
type participantStore interface {
	Create(ctx context.Context, participant *models.Participant) error
	GetByID(ctx context.Context, id int64) (*models.Participant, error)
	GetAll(ctx context.Context, search string) ([]*models.Participant, error)
	ExistsByParticipantID(ctx context.Context, participantID string) (bool, error)
	Update(ctx context.Context, participant *models.Participant) error
	Delete(ctx context.Context, id int64) error
}

// ParticipantService handles participant registration and management
type ParticipantService struct {
	participantRepo participantStore
	generator       *identifier.Generator
}

// NewParticipantService creates a new participant service
func NewParticipantService(participantRepo participantStore, generator *identifier.Generator) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		generator:       generator,
	}
}

// Create registers a participant, assigning a fresh public identifier
func (s *ParticipantService) Create(ctx context.Context, req *dto.CreateParticipantRequest) (*models.Participant, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Organization) == "" {
		return nil, apperrors.NewValidationError("full name and organization are required")
	}

	participantID, err := s.generator.ParticipantID(ctx, s.participantRepo.ExistsByParticipantID)
	if err != nil {
		return nil, err
	}

	participant := &models.Participant{
		FullName:      req.FullName,
		ParticipantID: participantID,
		ClassYear:     req.ClassYear,
		StreamMajor:   req.StreamMajor,
		Organization:  req.Organization,
		Email:         req.Email,
		Phone:         req.Phone,
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, err
	}

	return participant, nil
}

// GetByID retrieves a participant by internal key
func (s *ParticipantService) GetByID(ctx context.Context, id int64) (*models.Participant, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid participant ID")
	}
	return s.participantRepo.GetByID(ctx, id)
}

// GetAll retrieves participants with an optional substring search
func (s *ParticipantService) GetAll(ctx context.Context, search string) ([]*models.Participant, error) {
	return s.participantRepo.GetAll(ctx, search)
}

// Update applies a partial update to a participant. Nil request fields keep
// their current value; the public identifier is never changed.
func (s *ParticipantService) Update(ctx context.Context, id int64, req *dto.UpdateParticipantRequest) (*models.Participant, error) {
	participant, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		participant.FullName = *req.FullName
	}
	if req.ClassYear != nil {
		participant.ClassYear = req.ClassYear
	}
	if req.StreamMajor != nil {
		participant.StreamMajor = req.StreamMajor
	}
	if req.Organization != nil && strings.TrimSpace(*req.Organization) != "" {
		participant.Organization = *req.Organization
	}
	if req.Email != nil {
		participant.Email = req.Email
	}
	if req.Phone != nil {
		participant.Phone = req.Phone
	}

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return nil, err
	}

	return participant, nil
}

// Delete removes a participant and, via the store's cascade, all credentials
// referencing them. Returns the removed row.
func (s *ParticipantService) Delete(ctx context.Context, id int64) (*models.Participant, error) {
	participant, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.participantRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return participant, nil
}
