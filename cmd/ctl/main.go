package main

import (
	"fmt"
	"os"
	"time"

	"brasileirao-go/internal/config"
	"brasileirao-go/internal/infra/database"
	"brasileirao-go/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configPath string
	timeout    time.Duration
)

// rootCmd 运维命令入口
var rootCmd = &cobra.Command{
	Use:   "ctl",
	Short: "Brasileirão operations tool",
	Long: `Operational commands for the Brasileirão backend.

Available subcommands:
  migrate          - Apply the database schema
  seed             - Load teams, badges and transfers from the seed file
  grant-admin      - Promote a user to ADMIN
  make-journalist  - Create a journalist profile for a user
  reindex          - Rebuild the news search index`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Config file path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(grantAdminCmd)
	rootCmd.AddCommand(makeJournalistCmd)
	rootCmd.AddCommand(reindexCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap 加载配置、初始化日志并连接数据库
func bootstrap() (*config.Config, *gorm.DB, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := logger.Init(logger.Options{
		Service: cfg.App.Name + "-ctl",
		Level:   cfg.Log.Level,
		Format:  "console",
		Output:  "stderr",
	}); err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(&cfg.Database, false)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		logger.Sync()
	}
	return cfg, db, cleanup, nil
}
