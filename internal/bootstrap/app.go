package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/taskbrief/taskbrief/internal/config"
	"github.com/taskbrief/taskbrief/internal/domain"
	"github.com/taskbrief/taskbrief/internal/handler"
	"github.com/taskbrief/taskbrief/internal/logger"
	"github.com/taskbrief/taskbrief/internal/repository"
	"github.com/taskbrief/taskbrief/internal/service"
	"github.com/taskbrief/taskbrief/pkg/openai"
	"github.com/taskbrief/taskbrief/pkg/slack"
)

type App struct {
	Echo   *echo.Echo
	Config *config.EnvConfig
	Store  domain.TodoRepository

	storeCloser io.Closer
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	a.Config = cfg

	logger.InitLogging(cfg.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// The store backend follows the configuration: Datastore when a project
	// is set, otherwise an in-process store for local development.
	if cfg.GCP_PROJECT_ID != "" {
		repo, err := repository.NewDatastoreTodoRepository(ctx, cfg.GCP_PROJECT_ID)
		if err != nil {
			return fmt.Errorf("failed to initialize datastore: %w", err)
		}
		a.Store = repo
		a.storeCloser = repo
	} else {
		logger.InfoLog(ctx, "GCP_PROJECT_ID not set, using in-memory todo store")
		a.Store = repository.NewMemoryTodoRepository()
	}

	// Missing OpenAI/Slack settings are not startup failures: the summarize
	// workflow reports them per request.
	todoSvc := service.NewTodoService(a.Store)
	summarySvc := service.NewSummaryService(
		a.Store,
		openai.NewClient(cfg.OPENAI_API_KEY, cfg.OPENAI_MODEL),
		slack.NewClient(cfg.SLACK_WEBHOOK_URL),
	)

	todoHandler := handler.NewTodoHandler(todoSvc)
	summaryHandler := handler.NewSummaryHandler(summarySvc)
	exportHandler := handler.NewExportHandler(todoSvc)

	a.RegisterMiddlewares()
	a.RegisterRoutes(todoHandler, summaryHandler, exportHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(todoHandler *handler.TodoHandler, summaryHandler *handler.SummaryHandler, exportHandler *handler.ExportHandler) {
	a.Echo.GET("/todos", todoHandler.ListHandler)
	a.Echo.POST("/todos", todoHandler.CreateHandler)
	a.Echo.PUT("/todos/:id", todoHandler.UpdateHandler)
	a.Echo.DELETE("/todos/:id", todoHandler.DeleteHandler)
	a.Echo.GET("/todos/export", exportHandler.ExportHandler)

	a.Echo.POST("/summarize", summaryHandler.SummarizeHandler)
}

func (a *App) Run() error {
	if a.storeCloser != nil {
		defer a.storeCloser.Close()
	}
	return a.Echo.Start(":" + a.Config.APP_PORT)
}
