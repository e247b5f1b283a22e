package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/certivo/certivo/internal/app/models"
	appRepos "github.com/certivo/certivo/internal/app/repositories"
	"github.com/certivo/certivo/internal/config"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/auth"
)

// CreateDefaultAdmin creates the bootstrap admin account from configuration.
// Nothing is seeded when no admin credentials are configured; an already
// existing account is not an error.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		lgr.Debug().Msg("No default admin configured, skipping seed")
		return nil
	}

	adminRepo := appRepos.NewAdminRepository(dbPool)

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.Admin{
		Username: cfg.Admin.Username,
		Password: hash,
		Email:    cfg.Admin.Email,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrAdminAlreadyExists) {
			lgr.Debug().Str("username", cfg.Admin.Username).Msg("Default admin already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("username", admin.Username).Msg("Default admin account created")
	return nil
}
