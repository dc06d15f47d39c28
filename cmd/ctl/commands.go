package main

import (
	"context"
	"fmt"

	"brasileirao-go/internal/infra/database"
	infraES "brasileirao-go/internal/infra/elasticsearch"
	infraRedis "brasileirao-go/internal/infra/redis"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/internal/seed"
	"brasileirao-go/internal/service"
	"brasileirao-go/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and record its version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := database.AutoMigrate(db, model.All()...); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
		return nil
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load teams, badges and transfers from the seed file",
	Long: `Upsert teams, badge definitions and transfers from a YAML seed file.

Running it again updates names and colors but never resets standings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		path := seedFile
		if path == "" {
			path = cfg.Seed.File
		}
		data, err := seed.Load(path)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		teamRepo := repository.NewTeamRepository(db)
		if err := seed.Apply(ctx, data, teamRepo, repository.NewBadgeRepository(db), repository.NewTransferRepository(db)); err != nil {
			return err
		}

		// 缓存中的球队列表已过期
		if cfg.Redis.Host != "" {
			if err := infraRedis.Init(&cfg.Redis); err != nil {
				logger.Warn("Redis unavailable, team cache not invalidated", zap.Error(err))
			} else {
				defer infraRedis.Close()
				teams := service.NewTeamService(teamRepo, nil, nil, nil).
					WithCache(infraRedis.NewJSONCache(infraRedis.Get(), cfg.Redis.TTL()))
				if err := teams.InvalidateCache(ctx); err != nil {
					logger.Warn("Failed to invalidate team cache", zap.Error(err))
				}
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d teams, %d badges and %d transfers from %s\n", len(data.Teams), len(data.Badges), len(data.Transfers), path)
		return nil
	},
}

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin <email>",
	Short: "Promote a user to ADMIN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		userRepo := repository.NewUserRepository(db)
		user, err := userRepo.GetByEmail(ctx, args[0])
		if err != nil {
			return fmt.Errorf("find user %s: %w", args[0], err)
		}
		if _, err := userRepo.SetUserType(ctx, user.ID, model.UserTypeAdmin); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now ADMIN\n", user.Email)
		return nil
	},
}

var organization string

var makeJournalistCmd = &cobra.Command{
	Use:   "make-journalist <email>",
	Short: "Create a journalist profile for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		user, err := repository.NewUserRepository(db).GetByEmail(ctx, args[0])
		if err != nil {
			return fmt.Errorf("find user %s: %w", args[0], err)
		}
		j, err := repository.NewJournalistRepository(db).Promote(ctx, user.ID, organization)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now a journalist (%s)\n", user.Email, j.ID)
		return nil
	},
}

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the news search index from the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		index, err := infraES.New(&cfg.Elasticsearch)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := index.EnsureIndex(ctx); err != nil {
			return err
		}
		indexer := service.NewNewsIndexer(
			repository.NewNewsRepository(db),
			repository.NewJournalistRepository(db),
			repository.NewUserRepository(db),
			index,
		)
		ok, failed, err := indexer.Reindex(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d news into %s, %d failed\n", ok, index.Name(), failed)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed file (default: seed.file from config)")
	makeJournalistCmd.Flags().StringVar(&organization, "organization", "", "Newsroom the journalist works for")
	_ = makeJournalistCmd.MarkFlagRequired("organization")
}
