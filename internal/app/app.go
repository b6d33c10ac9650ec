package app

import (
	"context"
	"dsa_platform_backend/internal/config"
	"dsa_platform_backend/internal/controller"
	"dsa_platform_backend/internal/middleware"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/internal/service"
	"dsa_platform_backend/pkg/database"
	"dsa_platform_backend/pkg/logger"
	"dsa_platform_backend/pkg/monitoring"
	"dsa_platform_backend/pkg/security"
	"dsa_platform_backend/pkg/tracing"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider
	rateLimiter    *security.RateLimiter
}

type repositories struct {
	user     *repository.UserRepository
	question *repository.QuestionRepository
	topic    *repository.TopicRepository
	progress *repository.ProgressRepository
	attempt  *repository.AttemptRepository
	profile  *repository.ProfileRepository
	bookmark *repository.BookmarkRepository
}

type services struct {
	auth     *service.AuthService
	question *service.QuestionService
	topic    *service.TopicService
	progress *service.ProgressService
	profile  *service.ProfileService
	stats    *service.StatsService
}

type controllers struct {
	auth     *controller.AuthController
	question *controller.QuestionController
	topic    *controller.TopicController
	progress *controller.ProgressController
	profile  *controller.ProfileController
	stats    *controller.StatsController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		question: repository.NewQuestionRepository(db),
		topic:    repository.NewTopicRepository(db),
		progress: repository.NewProgressRepository(db),
		attempt:  repository.NewAttemptRepository(db),
		profile:  repository.NewProfileRepository(db),
		bookmark: repository.NewBookmarkRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:     service.NewAuthService(repos.user, cfg),
		question: service.NewQuestionService(repos.question),
		topic:    service.NewTopicService(repos.topic),
		progress: service.NewProgressService(repos.progress, repos.attempt),
		profile:  service.NewProfileService(repos.profile),
		stats:    service.NewStatsService(repos.user, repos.progress, repos.bookmark, rdb, cfg),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		question: controller.NewQuestionController(s.question),
		topic:    controller.NewTopicController(s.topic),
		progress: controller.NewProgressController(s.progress),
		profile:  controller.NewProfileController(s.profile),
		stats:    controller.NewStatsController(s.stats),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	// max_requests <= 0 表示不限流
	if cfg.RateLimit.MaxRequests > 0 && cfg.RateLimit.WindowMinutes > 0 {
		a.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
		router.Use(a.rateLimiter.Middleware())
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 使用已建立的连接组装应用；rdb 可以为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	svcs := app.initServices(repos, cfg, rdb)
	ctrls := app.initControllers(svcs, db, rdb)

	monitoring.Init()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully", zap.String("mode", cfg.Server.Mode))

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式下默认不迁移，需要显式 -migrate
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		if err := database.Seed(db); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close 停止限流清理并释放 tracer、Redis 与连接池
func (a *App) Close(ctx context.Context) {
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
