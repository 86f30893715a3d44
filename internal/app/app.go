package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emo_buddy_backend/internal/config"
	"emo_buddy_backend/internal/controller"
	"emo_buddy_backend/internal/repository"
	"emo_buddy_backend/internal/service"
	"emo_buddy_backend/pkg/database"
	"emo_buddy_backend/pkg/logger"
	"emo_buddy_backend/pkg/mailer"
	"emo_buddy_backend/pkg/monitoring"
	"emo_buddy_backend/pkg/security"
	"emo_buddy_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	wall      *repository.WallRepository
	survey    *repository.SurveyRepository
	chat      *repository.ChatRepository
	dashboard *repository.DashboardRepository
}

type services struct {
	ai         *service.AIService
	risk       *service.RiskService
	moderation *service.ModerationService
	alert      *service.AlertService
	wall       *service.WallService
	survey     *service.SurveyService
	chat       *service.ChatService
	dashboard  *service.DashboardService
}

type controllers struct {
	wall      *controller.WallController
	survey    *controller.SurveyController
	chat      *controller.ChatController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		wall:      repository.NewWallRepository(db, rdb),
		survey:    repository.NewSurveyRepository(db),
		chat:      repository.NewChatRepository(db),
		dashboard: repository.NewDashboardRepository(db, rdb),
	}
}

// initServices lắp ráp collaborator một lần lúc khởi động, không dùng singleton ẩn
func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.risk = service.NewRiskService(cfg.Moderation)
	s.moderation = service.NewModerationService(s.ai)
	s.alert = service.NewAlertService(mailer.NewSMTPSender(cfg.Alert), cfg.Moderation)

	s.wall = service.NewWallService(s.moderation, repos.wall)
	s.survey = service.NewSurveyService(s.ai, s.risk, repos.survey, s.alert)
	s.chat = service.NewChatService(s.ai, repos.chat)
	s.dashboard = service.NewDashboardService(repos.dashboard, repos.chat, cfg.Admin, cfg.Moderation)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		wall:      controller.NewWallController(s.wall),
		survey:    controller.NewSurveyController(s.survey),
		chat:      controller.NewChatController(s.chat),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis chỉ là cache, thiếu nó hệ thống vẫn chạy được
		logger.Log.Warn("Redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("emo-buddy", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	// Chờ tín hiệu dừng rồi tắt êm trong 5 giây
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
