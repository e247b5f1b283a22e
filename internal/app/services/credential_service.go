package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/certificate"
	"github.com/certivo/certivo/internal/pkg/identifier"
)

// Narrow store views consumed by the credential service. Declared here so
// the service can be exercised against in-memory fakes.
type credentialStore interface {
	Create(ctx context.Context, credential *models.Credential) error
	GetByID(ctx context.Context, id int64) (*models.Credential, error)
	GetByCredentialID(ctx context.Context, credentialID string) (*models.Credential, error)
	GetAll(ctx context.Context) ([]*models.Credential, error)
	Delete(ctx context.Context, id int64) error
}

type participantReader interface {
	GetByID(ctx context.Context, id int64) (*models.Participant, error)
}

type courseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// documentRenderer converts final HTML into PDF bytes.
type documentRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// CredentialService orchestrates credential issuance, certificate rendering
// and public validation.
type CredentialService struct {
	credentialRepo  credentialStore
	participantRepo participantReader
	courseRepo      courseReader
	generator       *identifier.Generator
	renderer        documentRenderer
	baseURL         string
	logger          zerolog.Logger
}

// NewCredentialService creates a new credential service
func NewCredentialService(
	credentialRepo credentialStore,
	participantRepo participantReader,
	courseRepo courseReader,
	generator *identifier.Generator,
	renderer documentRenderer,
	baseURL string,
	logger zerolog.Logger,
) *CredentialService {
	return &CredentialService{
		credentialRepo:  credentialRepo,
		participantRepo: participantRepo,
		courseRepo:      courseRepo,
		generator:       generator,
		renderer:        renderer,
		baseURL:         strings.TrimRight(baseURL, "/"),
		logger:          logger,
	}
}

// Issue creates a credential linking a participant to a course. Both
// references must resolve; issuing the same pair twice produces two
// independent credentials.
func (s *CredentialService) Issue(ctx context.Context, participantID, courseID int64) (*models.Credential, error) {
	if participantID <= 0 || courseID <= 0 {
		return nil, apperrors.NewValidationError("participant ID and course ID are required")
	}

	if _, err := s.participantRepo.GetByID(ctx, participantID); err != nil {
		return nil, err
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	credentialID := s.generator.CredentialID()

	credential := &models.Credential{
		CredentialID:  credentialID,
		ParticipantID: participantID,
		CourseID:      courseID,
		ValidationURL: s.baseURL + "/validate/" + credentialID,
		Status:        models.StatusActive,
	}

	if err := s.credentialRepo.Create(ctx, credential); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("credentialId", credential.CredentialID).
		Int64("participantId", participantID).
		Int64("courseId", courseID).
		Msg("Credential issued")

	return credential, nil
}

// GetByID retrieves a credential joined with its participant and course
func (s *CredentialService) GetByID(ctx context.Context, id int64) (*models.Credential, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid credential ID")
	}
	return s.credentialRepo.GetByID(ctx, id)
}

// GetAll retrieves all credentials joined with their participants and courses
func (s *CredentialService) GetAll(ctx context.Context) ([]*models.Credential, error) {
	return s.credentialRepo.GetAll(ctx)
}

// GenerateCertificate renders the certificate PDF for a credential. Every
// call re-renders from the current store state, so template or participant
// edits are reflected immediately.
func (s *CredentialService) GenerateCertificate(ctx context.Context, id int64) ([]byte, *models.Credential, error) {
	credential, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	html, err := s.buildCertificateHTML(credential)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := s.renderer.RenderPDF(ctx, html)
	if err != nil {
		s.logger.Error().Err(err).Str("credentialId", credential.CredentialID).Msg("Certificate rendering failed")
		return nil, nil, apperrors.NewCustomError(apperrors.ErrRenderFailed, err.Error())
	}

	return pdf, credential, nil
}

// buildCertificateHTML assembles the render bundle and fills the course
// template. The QR code is generated first so its data URI can be
// substituted like any other token.
func (s *CredentialService) buildCertificateHTML(credential *models.Credential) (string, error) {
	qrCode, err := certificate.QRCodeDataURI(credential.ValidationURL)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrRenderFailed, err.Error())
	}

	participant := credential.Participant
	course := credential.Course

	data := certificate.RenderData{
		ParticipantName: participant.FullName,
		ParticipantID:   participant.ParticipantID,
		Organization:    participant.Organization,
		ClassYear:       stringValue(participant.ClassYear),
		StreamMajor:     stringValue(participant.StreamMajor),
		CourseTitle:     course.Title,
		Duration:        course.Duration,
		StartDate:       course.StartDate,
		EndDate:         course.EndDate,
		IssueDate:       credential.IssueDate,
		CredentialID:    credential.CredentialID,
		ValidationURL:   credential.ValidationURL,
		QRCodeDataURI:   qrCode,
	}

	return certificate.FillTemplate(course.Template, data), nil
}

// Validate looks up a credential by its public identifier. Absence is not an
// error at this level; the caller translates ErrCredentialNotFound into a
// soft "not valid" outcome.
func (s *CredentialService) Validate(ctx context.Context, credentialID string) (*models.Credential, error) {
	if strings.TrimSpace(credentialID) == "" {
		return nil, apperrors.ErrCredentialNotFound
	}

	credential, err := s.credentialRepo.GetByCredentialID(ctx, credentialID)
	if err != nil {
		return nil, err
	}

	return credential, nil
}

// Delete removes a credential by internal key and returns the removed row
func (s *CredentialService) Delete(ctx context.Context, id int64) (*models.Credential, error) {
	credential, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.credentialRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return credential, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
