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

	appControllers "github.com/selim/coursepilot/internal/app/controllers"
	appMigrations "github.com/selim/coursepilot/internal/app/migrations"
	appRepos "github.com/selim/coursepilot/internal/app/repositories"
	appRoutes "github.com/selim/coursepilot/internal/app/routes"
	appServices "github.com/selim/coursepilot/internal/app/services"
	"github.com/selim/coursepilot/internal/config"
	"github.com/selim/coursepilot/internal/db"
	appMiddleware "github.com/selim/coursepilot/internal/middleware"
	pkgAuth "github.com/selim/coursepilot/internal/pkg/auth"
	"github.com/selim/coursepilot/internal/pkg/helpers"
	"github.com/selim/coursepilot/internal/pkg/imagehost"
	"github.com/selim/coursepilot/internal/pkg/logger"
	"github.com/selim/coursepilot/internal/pkg/semantic"
	"github.com/selim/coursepilot/internal/seed"
	"github.com/selim/coursepilot/internal/tools"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService     *appServices.CatalogService
	ScheduleService    *appServices.ScheduleService
	CatalogController  *appControllers.CatalogController
	ScheduleController *appControllers.ScheduleController
	ToolController     *appControllers.ToolController
	ToolRegistry       *tools.Registry
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
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

	// Seed the sample catalog after migrations
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Non-fatal, the catalog can be populated later
		lgr.Error().Err(err).Msg("Failed to seed default catalog, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Optional external services, nil when unconfigured
	var semanticIndex appServices.SemanticIndex
	if client := semantic.NewClient(cfg.Semantic); client != nil {
		semanticIndex = client
		lgr.Info().Str("endpoint", cfg.Semantic.Endpoint).Msg("Semantic index enabled")
	}

	var uploader appServices.ImageUploader
	if cfg.ImageHost.Endpoint != "" {
		uploader = imagehost.NewClient(cfg.ImageHost)
		lgr.Info().Str("endpoint", cfg.ImageHost.Endpoint).Msg("Calendar image uploads enabled")
	}

	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CourseRepository, semanticIndex, lgr)
	deps.ScheduleService = appServices.NewScheduleService(
		deps.Repos.CourseRepository,
		deps.Repos.ScheduleRepository,
		uploader,
		cfg.Calendar,
		lgr,
	)

	deps.ToolRegistry = tools.RegisterAll(deps.CatalogService, deps.ScheduleService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.ToolController = appControllers.NewToolController(deps.ToolRegistry)

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
		deps.CatalogController,
		deps.ScheduleController,
		deps.ToolController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
