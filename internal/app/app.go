package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/controller"
	"study_buddy_backend/internal/middleware"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/pkg/database"
	"study_buddy_backend/pkg/logger"
	"study_buddy_backend/pkg/monitoring"
	"study_buddy_backend/pkg/security"
	"study_buddy_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user *repository.UserRepository
	quiz *repository.QuizRepository
}

type services struct {
	ai   *service.AIService
	chat *service.ChatService
	quiz *service.QuizService
	user *service.UserService
}

type controllers struct {
	chat   *controller.ChatController
	quiz   *controller.QuizController
	user   *controller.UserController
	health *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user: repository.NewUserRepository(db),
		quiz: repository.NewQuizRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.chat = service.NewChatService(s.ai)
	s.quiz = service.NewQuizService(s.ai, repos.quiz)
	s.user = service.NewUserService(repos.user, repos.quiz)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		chat:   controller.NewChatController(s.chat),
		quiz:   controller.NewQuizController(s.quiz),
		user:   controller.NewUserController(s.user),
		health: controller.NewHealthController(),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))
	router.Use(middleware.RequestID())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("study-buddy", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
