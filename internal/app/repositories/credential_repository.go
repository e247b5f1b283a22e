package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/dberrors"
)

// CredentialRepository handles database operations for credentials
type CredentialRepository struct {
	db *pgxpool.Pool
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{
		db: db,
	}
}

// joinedCredentialQuery selects a credential together with its participant
// and course. The foreign keys are NOT NULL and cascade on delete, so inner
// joins cannot drop rows.
const joinedCredentialQuery = `
	SELECT
		cr.id, cr.credential_id, cr.participant_id, cr.course_id,
		cr.issue_date, cr.validation_url, cr.status, cr.created_at, cr.updated_at,
		p.id, p.full_name, p.participant_id, p.class_year, p.stream_major,
		p.organization, p.email, p.phone, p.created_at, p.updated_at,
		c.id, c.title, c.duration, c.start_date, c.end_date, c.template,
		c.description, c.created_at, c.updated_at
	FROM credentials cr
	JOIN participants p ON cr.participant_id = p.id
	JOIN courses c ON cr.course_id = c.id
`

func scanJoinedCredential(row pgx.Row) (*models.Credential, error) {
	var cred models.Credential
	var participant models.Participant
	var course models.Course

	err := row.Scan(
		&cred.ID, &cred.CredentialID, &cred.ParticipantID, &cred.CourseID,
		&cred.IssueDate, &cred.ValidationURL, &cred.Status, &cred.CreatedAt, &cred.UpdatedAt,
		&participant.ID, &participant.FullName, &participant.ParticipantID,
		&participant.ClassYear, &participant.StreamMajor, &participant.Organization,
		&participant.Email, &participant.Phone, &participant.CreatedAt, &participant.UpdatedAt,
		&course.ID, &course.Title, &course.Duration, &course.StartDate, &course.EndDate,
		&course.Template, &course.Description, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cred.Participant = &participant
	cred.Course = &course
	return &cred, nil
}

// Create inserts a new credential row
func (r *CredentialRepository) Create(ctx context.Context, credential *models.Credential) error {
	query := `
		INSERT INTO credentials (credential_id, participant_id, course_id, validation_url, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, issue_date, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		credential.CredentialID,
		credential.ParticipantID,
		credential.CourseID,
		credential.ValidationURL,
		credential.Status,
	).Scan(&credential.ID, &credential.IssueDate, &credential.CreatedAt, &credential.UpdatedAt)

	if err != nil {
		// A unique violation here is the identifier-collision race losing
		// against the store's constraint.
		if dberrors.IsUniqueViolationOn(err, "credentials_credential_id_key") {
			return apperrors.ErrDuplicateIdentifier
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating credential: %w", err)
	}

	return nil
}

// GetByID retrieves a credential by internal key, joined with its
// participant and course
func (r *CredentialRepository) GetByID(ctx context.Context, id int64) (*models.Credential, error) {
	credential, err := scanJoinedCredential(r.db.QueryRow(ctx, joinedCredentialQuery+` WHERE cr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("error retrieving credential: %w", err)
	}

	return credential, nil
}

// GetByCredentialID retrieves a credential by its public identifier, joined
// with its participant and course
func (r *CredentialRepository) GetByCredentialID(ctx context.Context, credentialID string) (*models.Credential, error) {
	credential, err := scanJoinedCredential(r.db.QueryRow(ctx, joinedCredentialQuery+` WHERE cr.credential_id = $1`, credentialID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("error retrieving credential: %w", err)
	}

	return credential, nil
}

// GetAll retrieves all credentials joined with their participants and courses
func (r *CredentialRepository) GetAll(ctx context.Context) ([]*models.Credential, error) {
	rows, err := r.db.Query(ctx, joinedCredentialQuery+` ORDER BY cr.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving credentials: %w", err)
	}
	defer rows.Close()

	var credentials []*models.Credential
	for rows.Next() {
		credential, err := scanJoinedCredential(rows)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return credentials, nil
}

// Delete removes a credential by internal key
func (r *CredentialRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM credentials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting credential: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCredentialNotFound
	}

	return nil
}
