package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/hagwon-app/hagwon/docs" // generated swagger docs
	appControllers "github.com/hagwon-app/hagwon/internal/app/controllers"
	appMigrations "github.com/hagwon-app/hagwon/internal/app/migrations"
	appRepos "github.com/hagwon-app/hagwon/internal/app/repositories"
	appRoutes "github.com/hagwon-app/hagwon/internal/app/routes"
	appServices "github.com/hagwon-app/hagwon/internal/app/services"
	"github.com/hagwon-app/hagwon/internal/config"
	"github.com/hagwon-app/hagwon/internal/db"
	appMiddleware "github.com/hagwon-app/hagwon/internal/middleware"
	pkgAuth "github.com/hagwon-app/hagwon/internal/pkg/auth"
	"github.com/hagwon-app/hagwon/internal/pkg/helpers"
	"github.com/hagwon-app/hagwon/internal/pkg/logger"
	"github.com/hagwon-app/hagwon/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	RegistrationService    appServices.RegistrationService
	StudentService         appServices.StudentService
	NoticeService          appServices.NoticeService
	LectureService         appServices.LectureService
	AuthController         *appControllers.AuthController
	RegistrationController *appControllers.RegistrationController
	StudentController      *appControllers.StudentController
	NoticeController       *appControllers.NoticeController
	LectureController      *appControllers.LectureController
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

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return database, nil
}

// SetupRedis establishes the Redis connection used for refresh tokens.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	client, err := db.NewRedisClient(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to Redis")
		return nil, err
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	return client, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, rdb *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool, rdb)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.AcademyRepository,
		deps.Repos.UserRepository,
		deps.Repos.RegistrationRepository,
		deps.Repos.FamilyRepository,
		database,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.UserRepository,
		deps.Repos.RegistrationRepository,
		deps.Repos.AcademyRepository,
		deps.Repos.LectureRepository,
		database,
		lgr,
	)
	deps.NoticeService = appServices.NewNoticeService(
		deps.Repos.NoticeRepository,
		deps.Repos.AcademyRepository,
		lgr,
	)
	deps.LectureService = appServices.NewLectureService(
		deps.Repos.LectureRepository,
		deps.Repos.ExamRepository,
		deps.Repos.ScoreRepository,
		deps.Repos.AcademyRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService)
	deps.LectureController = appControllers.NewLectureController(deps.LectureService)

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
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.RegistrationController,
		deps.StudentController,
		deps.NoticeController,
		deps.LectureController,
		deps.AuthMiddleware,
	)

	return router
}
