package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/coursehub/internal/app/auth"
	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appModels "github.com/yigit/coursehub/internal/app/models"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/filestorage"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/pkg/metrics"
	"github.com/yigit/coursehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB             *db.MySQLDB
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	JWTService     *pkgAuth.JWTService
	Policy         *appAuth.Policy
	AuthMiddleware *appMiddleware.AuthMiddleware
	FileStorage    *filestorage.LocalStorage
	Metrics        *metrics.Metrics
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to MySQL, ensures the schema and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MySQLDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewMySQLDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := appMigrations.NewMigrator(database.DB, lgr).Run(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	repos := appRepos.NewRepositories(database)
	defaults := seed.Defaults{
		AdminName:     cfg.Seed.AdminName,
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
		Departments:   cfg.Seed.Departments,
		Categories:    cfg.Seed.Categories,
	}
	if err := seed.CreateDefaultData(ctx, repos.AccountRepository, repos.DepartmentRepository, repos.CategoryRepository, defaults, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, database *db.MySQLDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{DB: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.MaxUploadBytes())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		Keys: pkgAuth.KeyRing{
			appModels.RoleStudent: cfg.JWT.StudentKey,
			appModels.RoleTeacher: cfg.JWT.TeacherKey,
			appModels.RoleAdmin:   cfg.JWT.AdminKey,
		},
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, pkgAuth.DefaultTokenExpiration),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, lgr)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	deps.Policy = appAuth.DefaultPolicy()
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Policy)
	deps.Metrics = metrics.New()

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()
	appMiddleware.UseJSONFieldNames()

	// The policy middleware must be installed before any route is registered.
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(deps.Metrics),
		cors.New(corsConfig(cfg)),
		appMiddleware.BodyLimit(cfg.MaxRequestBytes()),
		deps.AuthMiddleware.Enforce(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	router.Group("/uploads", appMiddleware.NoSniff()).Static("/", cfg.Server.StoragePath)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := deps.DB.DB.PingContext(ctx); err != nil {
			lgr.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	})

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	headers := []string{"Origin", "Content-Type", "Accept", "Authorization", appMiddleware.RoleHeader}
	for _, role := range appModels.AllRoles {
		headers = append(headers, role.TokenHeader())
	}

	c := cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     headers,
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(c.AllowOrigins) == 0 || slices.Contains(c.AllowOrigins, "*") {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}
