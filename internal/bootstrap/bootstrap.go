package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/studentrecords/internal/app/controllers"
	appRepos "github.com/yigit/studentrecords/internal/app/repositories"
	appRoutes "github.com/yigit/studentrecords/internal/app/routes"
	appServices "github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/config"
	appMiddleware "github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/logger"
	"github.com/yigit/studentrecords/internal/pkg/roster"
	"github.com/yigit/studentrecords/internal/seed"
)

// DefaultConfigPath is read when no path is given
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	ManagementService    *appServices.ManagementService
	Registry             *appServices.Guarded
	StudentController    *appControllers.StudentController
	InstructorController *appControllers.InstructorController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes repositories, the management service and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	deps.ManagementService = appServices.NewManagementService(deps.Repos, lgr)
	if cfg.Seed.SampleData {
		seed.LoadSampleData(deps.ManagementService, lgr)
	}
	deps.Registry = appServices.NewGuarded(deps.ManagementService)

	deps.StudentController = appControllers.NewStudentController(deps.Registry, cfg.Roster.MaxUploadSize)
	deps.InstructorController = appControllers.NewInstructorController(deps.Registry)
	deps.CourseController = appControllers.NewCourseController(deps.Registry, roster.NewExporter(cfg.Roster.SheetName))
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.Registry)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if strings.EqualFold(cfg.Server.Mode, "test") {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.InstructorController,
		deps.CourseController,
		deps.EnrollmentController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
