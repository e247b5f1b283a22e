package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/certivo/certivo/internal/app/controllers"
	appMigrations "github.com/certivo/certivo/internal/app/migrations"
	appRepos "github.com/certivo/certivo/internal/app/repositories"
	appRoutes "github.com/certivo/certivo/internal/app/routes"
	appServices "github.com/certivo/certivo/internal/app/services"
	"github.com/certivo/certivo/internal/config"
	"github.com/certivo/certivo/internal/db"
	pkgAuth "github.com/certivo/certivo/internal/pkg/auth"
	"github.com/certivo/certivo/internal/pkg/certificate"
	"github.com/certivo/certivo/internal/pkg/helpers"
	"github.com/certivo/certivo/internal/pkg/identifier"
	"github.com/certivo/certivo/internal/pkg/logger"
	"github.com/certivo/certivo/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	ParticipantService    *appServices.ParticipantService
	CourseService         *appServices.CourseService
	CredentialService     *appServices.CredentialService
	AuthController        *appControllers.AuthController
	ParticipantController *appControllers.ParticipantController
	CourseController      *appControllers.CourseController
	CredentialController  *appControllers.CredentialController
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	generator := identifier.New()
	renderer := certificate.NewRenderer(
		cfg.Renderer.ChromePath,
		helpers.ParseDuration(cfg.Renderer.Timeout, 30*time.Second),
	)

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, deps.JWTService, lgr)
	deps.ParticipantService = appServices.NewParticipantService(deps.Repos.ParticipantRepository, generator)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.CredentialService = appServices.NewCredentialService(
		deps.Repos.CredentialRepository,
		deps.Repos.ParticipantRepository,
		deps.Repos.CourseRepository,
		generator,
		renderer,
		cfg.App.BaseURL,
		lgr,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ParticipantController = appControllers.NewParticipantController(deps.ParticipantService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.CredentialController = appControllers.NewCredentialController(deps.CredentialService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ParticipantController,
		deps.CourseController,
		deps.CredentialController,
		deps.JWTService,
	)

	return router
}
