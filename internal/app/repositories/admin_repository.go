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

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (username, password, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, admin.Username, admin.Password, admin.Email).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAdminAlreadyExists
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetByID retrieves an admin account by internal key
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, `SELECT id, username, password, email, created_at, updated_at FROM admins WHERE id = $1`, id)
}

// GetByUsername retrieves an admin account by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return r.getOne(ctx, `SELECT id, username, password, email, created_at, updated_at FROM admins WHERE username = $1`, username)
}

func (r *AdminRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
		&admin.Email,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}
