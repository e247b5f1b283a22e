package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/dberrors"
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const participantColumns = `id, full_name, participant_id, class_year, stream_major, organization, email, phone, created_at, updated_at`

func scanParticipant(row pgx.Row) (*models.Participant, error) {
	var p models.Participant
	err := row.Scan(
		&p.ID,
		&p.FullName,
		&p.ParticipantID,
		&p.ClassYear,
		&p.StreamMajor,
		&p.Organization,
		&p.Email,
		&p.Phone,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new participant
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	query := `
		INSERT INTO participants (full_name, participant_id, class_year, stream_major, organization, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		participant.FullName,
		participant.ParticipantID,
		participant.ClassYear,
		participant.StreamMajor,
		participant.Organization,
		participant.Email,
		participant.Phone,
	).Scan(&participant.ID, &participant.CreatedAt, &participant.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "participants_participant_id_key") {
			return apperrors.ErrDuplicateIdentifier
		}
		return fmt.Errorf("error creating participant: %w", err)
	}

	return nil
}

// GetByID retrieves a participant by internal key
func (r *ParticipantRepository) GetByID(ctx context.Context, id int64) (*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`

	participant, err := scanParticipant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("error retrieving participant: %w", err)
	}

	return participant, nil
}

// GetAll retrieves participants, optionally filtered by a substring match on
// full name, public participant identifier, or organization.
func (r *ParticipantRepository) GetAll(ctx context.Context, search string) ([]*models.Participant, error) {
	builder := r.sb.Select(strings.Split(participantColumns, ", ")...).
		From("participants").
		OrderBy("created_at DESC")

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"participant_id": pattern},
			squirrel.ILike{"organization": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build participants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// ExistsByParticipantID checks whether a public participant identifier is taken
func (r *ParticipantRepository) ExistsByParticipantID(ctx context.Context, participantID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM participants WHERE participant_id = $1)`,
		participantID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking participant identifier: %w", err)
	}

	return exists, nil
}

// Update updates an existing participant
func (r *ParticipantRepository) Update(ctx context.Context, participant *models.Participant) error {
	query := `
		UPDATE participants
		SET full_name = $1, class_year = $2, stream_major = $3, organization = $4, email = $5, phone = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		participant.FullName,
		participant.ClassYear,
		participant.StreamMajor,
		participant.Organization,
		participant.Email,
		participant.Phone,
		participant.ID,
	).Scan(&participant.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrParticipantNotFound
		}
		return fmt.Errorf("error updating participant: %w", err)
	}

	return nil
}

// Delete removes a participant. Dependent credentials are removed by the
// store's cascading delete.
func (r *ParticipantRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting participant: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipantNotFound
	}

	return nil
}
