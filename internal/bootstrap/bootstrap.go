package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/skillsphere/skillsphere/docs" // Import generated swagger docs
	appControllers "github.com/skillsphere/skillsphere/internal/app/controllers"
	appMigrations "github.com/skillsphere/skillsphere/internal/app/migrations"
	appRepos "github.com/skillsphere/skillsphere/internal/app/repositories"
	appRoutes "github.com/skillsphere/skillsphere/internal/app/routes"
	appServices "github.com/skillsphere/skillsphere/internal/app/services"
	"github.com/skillsphere/skillsphere/internal/config"
	"github.com/skillsphere/skillsphere/internal/db"
	appMiddleware "github.com/skillsphere/skillsphere/internal/middleware"
	pkgAuth "github.com/skillsphere/skillsphere/internal/pkg/auth"
	"github.com/skillsphere/skillsphere/internal/pkg/filestorage"
	"github.com/skillsphere/skillsphere/internal/pkg/helpers"
	"github.com/skillsphere/skillsphere/internal/pkg/logger"
	"github.com/skillsphere/skillsphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	CourseService          *appServices.CourseService
	AnalyticsService       *appServices.AnalyticsService
	NotificationService    *appServices.NotificationService
	UserService            *appServices.UserService
	AuthController         *appControllers.AuthController
	CourseController       *appControllers.CourseController
	AnalyticsController    *appControllers.AnalyticsController
	UserController         *appControllers.UserController
	NotificationController *appControllers.NotificationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
	FileStorage            *filestorage.LocalStorage
	Database               *db.PostgresDB
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
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

	if cfg.Database.SeedData {
		if err := seed.CreateDemoData(context.Background(), dbPool, lgr); err != nil {
			// Demo data is a convenience; startup continues without it
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Database: database}
	dbPool := database.Pool

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage base URL must match the static file serving route
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	fileStorageBaseURL := strings.TrimRight(baseURL, "/") + "/uploads"

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.CertificateRepository,
		deps.FileStorage,
		database,
	)
	deps.AnalyticsService = appServices.NewAnalyticsService(deps.Repos.CourseRepository, deps.Repos.CertificateRepository)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, deps.Repos.CourseRepository)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.CourseRepository,
		deps.Repos.CertificateRepository,
		deps.FileStorage,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)

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
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())
	router.Use(cors.New(buildCORSConfig(cfg)))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.AnalyticsController,
		deps.UserController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	return router
}

func buildCORSConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	if cfg.CORS.Origin == "" || cfg.CORS.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.Origin, ",")
		corsConfig.AllowCredentials = true
	}
	return corsConfig
}
