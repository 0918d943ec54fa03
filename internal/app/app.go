package app

import (
	"career_compass_backend/internal/config"
	"career_compass_backend/internal/controller"
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/service"
	"career_compass_backend/pkg/configwatcher"
	"career_compass_backend/pkg/database"
	"career_compass_backend/pkg/logger"
	"career_compass_backend/pkg/monitoring"
	"career_compass_backend/pkg/security"
	"career_compass_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user           *repository.UserRepository
	cv             *repository.CVRepository
	recommendation *repository.RecommendationRepository
	roadmap        *repository.RoadmapRepository
	progress       *repository.ProgressRepository
}

type services struct {
	auth           *service.AuthService
	storage        *service.StorageService
	catalog        *service.CatalogService
	cv             *service.CVService
	recommendation *service.RecommendationService
	roadmap        *service.RoadmapService
	progress       *service.ProgressService
}

type controllers struct {
	auth           *controller.AuthController
	cv             *controller.CVController
	pathway        *controller.PathwayController
	recommendation *controller.RecommendationController
	roadmap        *controller.RoadmapController
	progress       *controller.ProgressController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:           repository.NewUserRepository(db),
		cv:             repository.NewCVRepository(db),
		recommendation: repository.NewRecommendationRepository(db),
		roadmap:        repository.NewRoadmapRepository(db),
		progress:       repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)

	catalog, err := service.NewCatalogService(cfg.Catalog.Path)
	if err != nil {
		logger.Log.Fatal("Failed to load pathway catalog", zap.Error(err))
	}
	s.catalog = catalog

	s.cv = service.NewCVService(repos.cv, s.storage)
	s.recommendation = service.NewRecommendationService(s.cv, s.catalog, repos.recommendation, rdb, cfg)
	s.roadmap = service.NewRoadmapService(s.cv, s.catalog, repos.roadmap, cfg)
	s.progress = service.NewProgressService(s.cv, repos.progress, repos.recommendation)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		cv:             controller.NewCVController(s.cv),
		pathway:        controller.NewPathwayController(s.catalog),
		recommendation: controller.NewRecommendationController(s.recommendation),
		roadmap:        controller.NewRoadmapController(s.roadmap),
		progress:       controller.NewProgressController(s.progress),
		health:         controller.NewHealthController(db, rdb, s.catalog),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 目录热更新：监听目录文件变化，防抖后整体重载
func (a *App) startBackgroundTasks(s *services) {
	if a.Config.Catalog.HotReload {
		go configwatcher.WatchFile(a.Config.Catalog.Path, s.catalog.Reload)
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("career-compass", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
