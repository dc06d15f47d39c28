package service

import (
	"context"
	"errors"
	"fmt"

	infraES "brasileirao-go/internal/infra/elasticsearch"
	infraKafka "brasileirao-go/internal/infra/kafka"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SearchIndex 新闻检索索引的写入端
type SearchIndex interface {
	IndexNews(ctx context.Context, doc *infraES.NewsDoc) error
	DeleteNews(ctx context.Context, newsID string) error
	BulkIndex(ctx context.Context, docs []*infraES.NewsDoc) (success, failed int, err error)
}

// NewsIndexer 根据新闻事件维护检索索引，数据库为准
type NewsIndexer struct {
	newsRepo       *repository.NewsRepository
	journalistRepo *repository.JournalistRepository
	userRepo       *repository.UserRepository
	index          SearchIndex
}

func NewNewsIndexer(
	newsRepo *repository.NewsRepository,
	journalistRepo *repository.JournalistRepository,
	userRepo *repository.UserRepository,
	index SearchIndex,
) *NewsIndexer {
	return &NewsIndexer{
		newsRepo:       newsRepo,
		journalistRepo: journalistRepo,
		userRepo:       userRepo,
		index:          index,
	}
}

// HandleEvent 处理单条新闻事件。发布与互动事件重新读取新闻并覆盖文档，
// 新闻已不存在时按删除处理。
func (x *NewsIndexer) HandleEvent(ctx context.Context, event *infraKafka.NewsEvent) error {
	switch event.Type {
	case infraKafka.EventNewsDeleted:
		return x.index.DeleteNews(ctx, event.NewsID)
	case infraKafka.EventNewsPublished, infraKafka.EventNewsInteraction:
		n, err := x.newsRepo.GetByID(ctx, event.NewsID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return x.index.DeleteNews(ctx, event.NewsID)
		}
		if err != nil {
			return err
		}
		docs, err := x.documents(ctx, []model.News{*n})
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}
		return x.index.IndexNews(ctx, docs[0])
	default:
		logger.Warn("ignoring unknown news event", zap.String("type", event.Type))
		return nil
	}
}

// Reindex 全量重建索引，返回成功与失败条数
func (x *NewsIndexer) Reindex(ctx context.Context) (int, int, error) {
	list, err := x.newsRepo.ListAllPublished(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load published news: %w", err)
	}
	docs, err := x.documents(ctx, list)
	if err != nil {
		return 0, 0, err
	}
	return x.index.BulkIndex(ctx, docs)
}

// documents 批量解析作者名后转为索引文档，作者无法解析的记录跳过
func (x *NewsIndexer) documents(ctx context.Context, list []model.News) ([]*infraES.NewsDoc, error) {
	journalistIDs := newIDSet()
	userIDs := newIDSet()
	for i := range list {
		switch a := list[i].Author().(type) {
		case model.JournalistAuthor:
			journalistIDs.add(a.JournalistID)
		case model.InfluencerAuthor:
			userIDs.add(a.UserID)
		}
	}

	journalists, err := x.journalistRepo.GetByIDs(ctx, journalistIDs.list())
	if err != nil {
		return nil, err
	}
	journalistUser := make(map[string]string, len(journalists))
	for _, j := range journalists {
		journalistUser[j.ID] = j.UserID
		userIDs.add(j.UserID)
	}
	users, err := x.userRepo.GetByIDs(ctx, userIDs.list())
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	docs := make([]*infraES.NewsDoc, 0, len(list))
	for i := range list {
		var userID string
		switch a := list[i].Author().(type) {
		case model.JournalistAuthor:
			userID = journalistUser[a.JournalistID]
		case model.InfluencerAuthor:
			userID = a.UserID
		}
		name, ok := names[userID]
		if !ok {
			logger.Debug("skipping news without resolvable author", zap.String("news_id", list[i].ID))
			continue
		}
		docs = append(docs, infraES.ToDoc(&list[i], name))
	}
	return docs, nil
}
