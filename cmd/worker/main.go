package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"brasileirao-go/internal/config"
	"brasileirao-go/internal/infra/database"
	infraES "brasileirao-go/internal/infra/elasticsearch"
	infraKafka "brasileirao-go/internal/infra/kafka"
	"brasileirao-go/internal/repository"
	"brasileirao-go/internal/service"
	"brasileirao-go/pkg/logger"

	"go.uber.org/zap"
)

// worker 负责两件后台任务：消费新闻事件维护搜索索引，定期清理过期会话
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(logger.Options{
		Service:  cfg.App.Name + "-worker",
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	}); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database, false); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()
	db := database.Get()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		pruneSessions(ctx, repository.NewSessionRepository(db), cfg.Session.PruneInterval())
	}()

	if len(cfg.Kafka.Brokers) > 0 && len(cfg.Elasticsearch.Hosts) > 0 {
		index, err := infraES.New(&cfg.Elasticsearch)
		if err != nil {
			logger.Fatal("Failed to init elasticsearch", zap.Error(err))
		}
		if err := index.EnsureIndex(ctx); err != nil {
			logger.Fatal("Failed to ensure news index", zap.Error(err))
		}

		indexer := service.NewNewsIndexer(
			repository.NewNewsRepository(db),
			repository.NewJournalistRepository(db),
			repository.NewUserRepository(db),
			index,
		)

		wg.Add(1)
		go func() {
			defer wg.Done()
			infraKafka.ConsumeNewsEvents(ctx, cfg.Kafka.Brokers, cfg.Kafka.NewsEventsTopic(), cfg.Kafka.GroupID, indexer.HandleEvent)
		}()
	} else {
		logger.Warn("Kafka or Elasticsearch not configured, news indexing disabled")
	}

	logger.Info("Worker started",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.Duration("session_prune_interval", cfg.Session.PruneInterval()),
	)
	wg.Wait()
	logger.Info("Worker stopped")
}

// pruneSessions 按固定间隔删除过期会话，启动时先执行一次
func pruneSessions(ctx context.Context, repo *repository.SessionRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		n, err := repo.DeleteExpired(ctx, time.Now())
		if err != nil && ctx.Err() == nil {
			logger.Error("Failed to prune expired sessions", zap.Error(err))
		} else if n > 0 {
			logger.Info("Expired sessions pruned", zap.Int64("count", n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
