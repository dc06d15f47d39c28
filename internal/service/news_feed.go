package service

import (
	"context"
	"errors"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/model"
	"brasileirao-go/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultFeedLimit = 50
	MaxFeedLimit     = 100
)

// 新闻列表筛选方式
const (
	FilterMyTeam = "my-team"
	FilterAll    = "all"
)

var ErrLoginRequired = errors.New("Não autenticado")

// FeedQuery 新闻流查询条件。ViewerID 为空表示匿名访问。
type FeedQuery struct {
	Filter   string
	TeamID   string
	Limit    int
	Offset   int
	ViewerID string
}

// Feed 已发布新闻分页并补全球队、作者与当前用户的互动状态
func (s *NewsService) Feed(ctx context.Context, q FeedQuery) ([]dto.NewsItem, error) {
	limit, offset := normalizePage(q.Limit, q.Offset)

	teamID, err := s.resolveTeamFilter(ctx, q)
	if err != nil {
		return nil, err
	}

	list, err := s.newsRepo.ListPublished(ctx, teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list, q.ViewerID)
}

// resolveTeamFilter my-team 在查询时读取用户当前的 teamId；未选球队的用户得到全部新闻
func (s *NewsService) resolveTeamFilter(ctx context.Context, q FeedQuery) (string, error) {
	switch q.Filter {
	case FilterMyTeam:
		if q.ViewerID == "" {
			return "", ErrLoginRequired
		}
		user, err := s.userRepo.GetByID(ctx, q.ViewerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrLoginRequired
			}
			return "", err
		}
		if user.TeamID == nil {
			return "", nil
		}
		return *user.TeamID, nil
	case FilterAll:
		return "", nil
	default:
		return q.TeamID, nil
	}
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// feedLookup 一页新闻所需的关联数据
type feedLookup struct {
	teams        map[string]*model.Team
	journalists  map[string]*model.Journalist
	users        map[string]*model.User
	interactions map[string]model.InteractionType
}

// enrich 批量补全：每类实体一次 IN 查询，查询次数与页大小无关。
// 球队或作者无法解析的记录被丢弃。
func (s *NewsService) enrich(ctx context.Context, list []model.News, viewerID string) ([]dto.NewsItem, error) {
	items := make([]dto.NewsItem, 0, len(list))
	if len(list) == 0 {
		return items, nil
	}

	teamIDs := newIDSet()
	journalistIDs := newIDSet()
	influencerIDs := newIDSet()
	newsIDs := make([]string, 0, len(list))
	for i := range list {
		n := &list[i]
		newsIDs = append(newsIDs, n.ID)
		teamIDs.add(n.TeamID)
		switch a := n.Author().(type) {
		case model.JournalistAuthor:
			journalistIDs.add(a.JournalistID)
		case model.InfluencerAuthor:
			influencerIDs.add(a.UserID)
		}
	}

	lk := feedLookup{
		teams:       map[string]*model.Team{},
		journalists: map[string]*model.Journalist{},
		users:       map[string]*model.User{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		teams, err := s.teamRepo.GetByIDs(gctx, teamIDs.list())
		if err != nil {
			return err
		}
		for i := range teams {
			lk.teams[teams[i].ID] = &teams[i]
		}
		return nil
	})
	g.Go(func() error {
		journalists, err := s.journalistRepo.GetByIDs(gctx, journalistIDs.list())
		if err != nil {
			return err
		}
		userIDs := influencerIDs
		for i := range journalists {
			lk.journalists[journalists[i].ID] = &journalists[i]
			userIDs.add(journalists[i].UserID)
		}
		users, err := s.userRepo.GetByIDs(gctx, userIDs.list())
		if err != nil {
			return err
		}
		for i := range users {
			lk.users[users[i].ID] = &users[i]
		}
		return nil
	})
	if viewerID != "" {
		g.Go(func() error {
			m, err := s.interactionRepo.MapByUser(gctx, viewerID, newsIDs)
			if err != nil {
				return err
			}
			lk.interactions = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range list {
		item, ok := project(&list[i], &lk)
		if !ok {
			logger.Debug("dropping news with unresolved references",
				zap.String("news_id", list[i].ID),
				zap.String("team_id", list[i].TeamID),
			)
			continue
		}
		if viewerID != "" {
			if t, ok := lk.interactions[item.ID]; ok {
				v := string(t)
				item.UserInteraction = &v
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// project 单条新闻投影为列表项
func project(n *model.News, lk *feedLookup) (dto.NewsItem, bool) {
	team, ok := lk.teams[n.TeamID]
	if !ok {
		return dto.NewsItem{}, false
	}

	item := toNewsItem(n)
	item.Team = &dto.TeamSummary{
		ID:             team.ID,
		Name:           team.Name,
		LogoURL:        team.LogoURL,
		PrimaryColor:   team.PrimaryColor,
		SecondaryColor: team.SecondaryColor,
	}

	switch a := n.Author().(type) {
	case model.JournalistAuthor:
		j, ok := lk.journalists[a.JournalistID]
		if !ok {
			return dto.NewsItem{}, false
		}
		u, ok := lk.users[j.UserID]
		if !ok {
			return dto.NewsItem{}, false
		}
		id := j.ID
		item.Journalist = &dto.JournalistSummary{ID: &id, User: authorSummary(u)}
	case model.InfluencerAuthor:
		u, ok := lk.users[a.UserID]
		if !ok {
			return dto.NewsItem{}, false
		}
		summary := authorSummary(u)
		item.Journalist = &dto.JournalistSummary{User: summary}
		item.Author = &summary
	default:
		return dto.NewsItem{}, false
	}
	return item, true
}

func authorSummary(u *model.User) dto.AuthorSummary {
	return dto.AuthorSummary{Name: u.Name, AvatarURL: u.AvatarURL}
}

func toNewsItem(n *model.News) dto.NewsItem {
	contentType := n.ContentType
	if contentType == "" {
		contentType = model.ContentText
	}
	return dto.NewsItem{
		ID:            n.ID,
		JournalistID:  n.JournalistID,
		UserID:        n.UserID,
		TeamID:        n.TeamID,
		Title:         n.Title,
		Content:       n.Content,
		ImageURL:      n.ImageURL,
		VideoURL:      n.VideoURL,
		ContentType:   string(contentType),
		Category:      string(n.Category),
		LikesCount:    n.LikesCount,
		DislikesCount: n.DislikesCount,
		IsPublished:   n.IsPublished,
		PublishedAt:   n.PublishedAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

// idSet 保持插入顺序的去重集合
type idSet struct {
	seen  map[string]struct{}
	order []string
}

func newIDSet() *idSet {
	return &idSet{seen: map[string]struct{}{}}
}

func (s *idSet) add(id string) {
	if id == "" {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *idSet) list() []string {
	return s.order
}
