package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/vinayk/rollcall/internal/app/auth"
	appControllers "github.com/vinayk/rollcall/internal/app/controllers"
	appMigrations "github.com/vinayk/rollcall/internal/app/migrations"
	appRepos "github.com/vinayk/rollcall/internal/app/repositories"
	appRoutes "github.com/vinayk/rollcall/internal/app/routes"
	appServices "github.com/vinayk/rollcall/internal/app/services"
	"github.com/vinayk/rollcall/internal/config"
	"github.com/vinayk/rollcall/internal/db"
	appMiddleware "github.com/vinayk/rollcall/internal/middleware"
	pkgAuth "github.com/vinayk/rollcall/internal/pkg/auth"
	"github.com/vinayk/rollcall/internal/pkg/helpers"
	"github.com/vinayk/rollcall/internal/pkg/logger"
	"github.com/vinayk/rollcall/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	DepartmentService    appServices.DepartmentService
	CourseService        appServices.CourseService
	StudentService       appServices.StudentService
	AttendanceService    appServices.AttendanceService
	AuthController       *appControllers.AuthController
	DepartmentController *appControllers.DepartmentController
	CourseController     *appControllers.CourseController
	StudentController    *appControllers.StudentController
	AttendanceController *appControllers.AttendanceController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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
		database.Close()
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

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers,
// seeds the bootstrap admin account and prunes expired refresh tokens.
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
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)

	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.DepartmentRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.DepartmentRepository)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, appAuth.DefaultPolicy())

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := seed.EnsureFirstUser(ctx, deps.Repos.UserRepository, deps.AuthService, &cfg.Bootstrap); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed bootstrap admin account")
		return nil, err
	}

	if removed, err := deps.Repos.TokenRepository.DeleteExpiredTokens(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Failed to prune expired refresh tokens, proceeding anyway...")
	} else if removed > 0 {
		lgr.Info().Int64("count", removed).Msg("Pruned expired refresh tokens")
	}

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
		deps.DepartmentController,
		deps.CourseController,
		deps.StudentController,
		deps.AttendanceController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
