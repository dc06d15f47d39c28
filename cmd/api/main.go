package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brasileirao-go/internal/api/handler"
	"brasileirao-go/internal/api/middleware"
	"brasileirao-go/internal/api/router"
	"brasileirao-go/internal/config"
	"brasileirao-go/internal/infra/database"
	infraES "brasileirao-go/internal/infra/elasticsearch"
	infraKafka "brasileirao-go/internal/infra/kafka"
	infraMinio "brasileirao-go/internal/infra/minio"
	infraRedis "brasileirao-go/internal/infra/redis"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/internal/service"
	"brasileirao-go/pkg/logger"

	_ "brasileirao-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Brasileirão API
// @version 1.0
// @description 巴西甲级联赛球迷站 API 服务

// @contact.name API Support

// @host 127.0.0.1:5000
// @BasePath /api

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name brasileirao.sid
// @description 会话 Cookie，也可使用 Authorization: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(logger.Options{
		Service:  cfg.App.Name,
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	}); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database, !cfg.App.IsRelease()); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(database.Get(), model.All()...); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	journalistRepo := repository.NewJournalistRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	influencerRepo := repository.NewInfluencerRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	badgeService := service.NewBadgeService(badgeRepo, ratingRepo, interactionRepo)
	authService := service.NewAuthService(userRepo, sessionRepo, teamRepo, badgeService, service.SessionSettings{
		Secret: cfg.Session.Secret,
		Issuer: cfg.App.Name,
		TTL:    cfg.Session.MaxAge(),
	})
	teamService := service.NewTeamService(teamRepo, matchRepo, ratingRepo, repository.NewTransferRepository(db))
	newsService := service.NewNewsService(newsRepo, teamRepo, journalistRepo, userRepo, interactionRepo, badgeService)
	ratingService := service.NewRatingService(ratingRepo, matchRepo, badgeService)
	profileService := service.NewProfileService(userRepo)
	influencerService := service.NewInfluencerService(influencerRepo, userRepo)

	// 以下基础设施均为可选，失败时降级运行

	// Redis：球队列表与积分榜缓存
	if cfg.Redis.Host != "" {
		if err := infraRedis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis init failed, team cache disabled", zap.Error(err))
		} else {
			defer infraRedis.Close()
			teamService.WithCache(infraRedis.NewJSONCache(infraRedis.Get(), cfg.Redis.TTL()))
		}
	}

	// Kafka：新闻事件，由 worker 消费后维护搜索索引
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := infraKafka.NewProducer(&cfg.Kafka)
		if err != nil {
			logger.Warn("Kafka producer init failed, news events disabled", zap.Error(err))
		} else {
			defer producer.Close()
			newsService.WithEvents(producer)
		}
	}

	// Elasticsearch：失败则搜索降级到 DB
	if len(cfg.Elasticsearch.Hosts) > 0 {
		index, err := infraES.New(&cfg.Elasticsearch)
		if err != nil {
			logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := index.EnsureIndex(ctx); err != nil {
				logger.Warn("Elasticsearch index init failed", zap.Error(err))
			}
			cancel()
			newsService.WithSearcher(index)
		}
	}

	// MinIO：头像上传，未启用时头像以 data URL 保存
	if cfg.MinIO.Endpoint != "" {
		store, err := infraMinio.NewAvatarStore(&cfg.MinIO)
		if err != nil {
			logger.Warn("MinIO init failed, avatars stored inline", zap.Error(err))
		} else {
			profileService.WithAvatarStore(store)
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))

	// 角色中间件每次从数据库读取用户
	fetchUser := func(ctx context.Context, userID string) (*model.User, error) {
		return userRepo.GetByID(ctx, userID)
	}

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, router.Handlers{
		Auth: handler.NewAuthHandler(authService, handler.CookieSettings{
			Name:   cfg.Session.CookieName,
			Secure: cfg.App.IsRelease(),
		}),
		Team:       handler.NewTeamHandler(teamService),
		News:       handler.NewNewsHandler(newsService),
		Rating:     handler.NewRatingHandler(ratingService),
		User:       handler.NewUserHandler(profileService, badgeService),
		Influencer: handler.NewInfluencerHandler(influencerService),
	},
		middleware.SessionAuth(authService, cfg.Session.CookieName),
		middleware.PublisherRequired(fetchUser),
		middleware.AdminRequired(fetchUser),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
		zap.Int("schema_version", newsRepo.SchemaVersion()),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Bem-vindo à %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    "/swagger/index.html",
	})
}
