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

	appControllers "github.com/kerem/clubsphere/internal/app/controllers"
	appMigrations "github.com/kerem/clubsphere/internal/app/migrations"
	appRepos "github.com/kerem/clubsphere/internal/app/repositories"
	appRoutes "github.com/kerem/clubsphere/internal/app/routes"
	appServices "github.com/kerem/clubsphere/internal/app/services"
	"github.com/kerem/clubsphere/internal/config"
	"github.com/kerem/clubsphere/internal/db"
	appMiddleware "github.com/kerem/clubsphere/internal/middleware"
	pkgAuth "github.com/kerem/clubsphere/internal/pkg/auth"
	"github.com/kerem/clubsphere/internal/pkg/helpers"
	"github.com/kerem/clubsphere/internal/pkg/logger"
	"github.com/kerem/clubsphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UniversityService      appServices.UniversityService
	UserService            appServices.UserService
	ClubService            appServices.ClubService
	EventService           appServices.EventService
	ClubRequestService     appServices.ClubRequestService
	AnnouncementService    appServices.AnnouncementService
	RecruitmentService     appServices.RecruitmentService
	AuthController         *appControllers.AuthController
	UniversityController   *appControllers.UniversityController
	UserController         *appControllers.UserController
	ClubController         *appControllers.ClubController
	EventController        *appControllers.EventController
	ClubRequestController  *appControllers.ClubRequestController
	AnnouncementController *appControllers.AnnouncementController
	RecruitmentController  *appControllers.RecruitmentController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
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

	logCfg := logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	}
	if cfg.Logging.File != "" {
		logCfg.File = &logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		}
	}
	logger.Configure(logCfg)

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds default data.
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
	lgr.Info().Msg("Database connection established.")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failures are logged but do not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.UniversityRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UniversityRepository)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.UniversityRepository,
		deps.Repos.ClubRepository,
		deps.Repos.EventRepository,
		lgr,
	)
	deps.ClubService = appServices.NewClubService(
		deps.Repos.ClubRepository,
		deps.Repos.ClubMemberRepository,
		deps.Repos.EventAttendeeRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.EventService = appServices.NewEventService(
		deps.Repos.EventRepository,
		deps.Repos.EventAttendeeRepository,
		deps.Repos.ClubRepository,
		deps.Repos.ClubMemberRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.ClubRequestService = appServices.NewClubRequestService(
		deps.Repos.ClubRequestRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.AnnouncementService = appServices.NewAnnouncementService(
		deps.Repos.AnnouncementRepository,
		deps.Repos.ClubRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.RecruitmentService = appServices.NewRecruitmentService(
		deps.Repos.RecruitmentRepository,
		deps.Repos.EventRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ClubController = appControllers.NewClubController(deps.ClubService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.ClubRequestController = appControllers.NewClubRequestController(deps.ClubRequestService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.RecruitmentController = appControllers.NewRecruitmentController(deps.RecruitmentService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), appMiddleware.CORS(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UniversityController,
		deps.UserController,
		deps.ClubController,
		deps.EventController,
		deps.ClubRequestController,
		deps.AnnouncementController,
		deps.RecruitmentController,
		deps.AuthMiddleware,
	)

	return router
}
