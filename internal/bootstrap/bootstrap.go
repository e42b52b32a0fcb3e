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

	appControllers "github.com/uzafar/campusdesk/internal/app/controllers"
	appMigrations "github.com/uzafar/campusdesk/internal/app/migrations"
	appRepos "github.com/uzafar/campusdesk/internal/app/repositories"
	appRoutes "github.com/uzafar/campusdesk/internal/app/routes"
	appServices "github.com/uzafar/campusdesk/internal/app/services"
	"github.com/uzafar/campusdesk/internal/config"
	"github.com/uzafar/campusdesk/internal/db"
	appMiddleware "github.com/uzafar/campusdesk/internal/middleware"
	pkgAuth "github.com/uzafar/campusdesk/internal/pkg/auth"
	"github.com/uzafar/campusdesk/internal/pkg/helpers"
	"github.com/uzafar/campusdesk/internal/pkg/logger"
	"github.com/uzafar/campusdesk/internal/seed"
	"github.com/uzafar/campusdesk/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                store.Store
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	AuthService          *appServices.AuthService
	DepartmentService    *appServices.DepartmentService
	InstructorService    *appServices.InstructorService
	CourseService        *appServices.CourseService
	ClassService         *appServices.ClassService
	StudentService       *appServices.StudentService
	OfferingService      *appServices.OfferingService
	EnrollmentService    *appServices.EnrollmentService
	WithdrawalService    *appServices.WithdrawalService
	MarkingService       *appServices.MarkingService
	AttendanceService    *appServices.AttendanceService
	ResultsService       *appServices.ResultsService
	AuthController       *appControllers.AuthController
	CatalogController    *appControllers.CatalogController
	StudentController    *appControllers.StudentController
	OfferingController   *appControllers.OfferingController
	EnrollmentController *appControllers.EnrollmentController
	MarkingController    *appControllers.MarkingController
	ResultsController    *appControllers.ResultsController
	AuthMiddleware       *appMiddleware.AuthMiddleware
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

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), store.NewPostgres(dbPool), lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Store = store.NewPostgres(dbPool)
	deps.Repos = appRepos.NewRepositories(deps.Store)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.InstructorRepository,
		deps.JWTService,
		lgr,
	)

	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.InstructorRepository, deps.Repos.DepartmentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository, deps.Repos.DepartmentRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.ClassRepository, lgr)
	deps.OfferingService = appServices.NewOfferingService(
		deps.Repos.OfferingRepository,
		deps.Repos.CourseRepository,
		deps.Repos.InstructorRepository,
		deps.Repos.ClassRepository,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.StudentRepository,
		deps.Repos.OfferingRepository,
		deps.Repos.CourseRepository,
		lgr,
	)
	deps.WithdrawalService = appServices.NewWithdrawalService(
		deps.Repos.StudentRepository,
		deps.Repos.OfferingRepository,
		deps.Repos.MarksRepository,
		deps.Repos.AttendanceRepository,
		lgr,
	)
	deps.MarkingService = appServices.NewMarkingService(
		deps.Repos.MarksRepository,
		deps.Repos.OfferingRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.OfferingRepository,
	)
	deps.ResultsService = appServices.NewResultsService(
		deps.Repos.StudentRepository,
		deps.Repos.OfferingRepository,
		deps.Repos.CourseRepository,
		deps.Repos.MarksRepository,
		deps.Repos.AttendanceRepository,
		cfg.Workflow.FinalizationCode,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CatalogController = appControllers.NewCatalogController(
		deps.DepartmentService,
		deps.InstructorService,
		deps.CourseService,
		deps.ClassService,
	)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.OfferingController = appControllers.NewOfferingController(deps.OfferingService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService, deps.WithdrawalService)
	deps.MarkingController = appControllers.NewMarkingController(deps.MarkingService, deps.AttendanceService)
	deps.ResultsController = appControllers.NewResultsController(deps.ResultsService)

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

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CatalogController,
		deps.StudentController,
		deps.OfferingController,
		deps.EnrollmentController,
		deps.MarkingController,
		deps.ResultsController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
