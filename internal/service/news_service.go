package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"brasileirao-go/internal/api/dto"
	infraKafka "brasileirao-go/internal/infra/kafka"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNewsNotFound           = errors.New("Notícia não encontrada")
	ErrNotPublisher           = errors.New("Acesso negado. Apenas jornalistas ou influencers.")
	ErrInfluencerTeamMismatch = errors.New("Influencers só podem postar notícias para o seu próprio time")
	ErrJournalistNotFound     = errors.New("Jornalista não encontrado")
	ErrNotNewsAuthor          = errors.New("Você não tem permissão para excluir esta notícia")
	ErrVideoURLRequired       = errors.New("Notícias em vídeo precisam de videoUrl")
	ErrInvalidInteraction     = errors.New("Tipo de interação inválido. Use LIKE ou DISLIKE")
	ErrInvalidCategory        = errors.New("Categoria inválida. Use NEWS, ANALYSIS, BACKSTAGE ou MARKET")
)

const eventTimeout = 2 * time.Second

type NewsService struct {
	newsRepo        *repository.NewsRepository
	teamRepo        *repository.TeamRepository
	journalistRepo  *repository.JournalistRepository
	userRepo        *repository.UserRepository
	interactionRepo *repository.InteractionRepository
	badges          BadgeEvaluator
	events          NewsEventPublisher
	searcher        NewsSearcher
}

func NewNewsService(
	newsRepo *repository.NewsRepository,
	teamRepo *repository.TeamRepository,
	journalistRepo *repository.JournalistRepository,
	userRepo *repository.UserRepository,
	interactionRepo *repository.InteractionRepository,
	badges BadgeEvaluator,
) *NewsService {
	return &NewsService{
		newsRepo:        newsRepo,
		teamRepo:        teamRepo,
		journalistRepo:  journalistRepo,
		userRepo:        userRepo,
		interactionRepo: interactionRepo,
		badges:          badges,
	}
}

// WithEvents 启用新闻事件发布
func (s *NewsService) WithEvents(p NewsEventPublisher) *NewsService {
	s.events = p
	return s
}

// WithSearcher 启用全文检索
func (s *NewsService) WithSearcher(searcher NewsSearcher) *NewsService {
	s.searcher = searcher
	return s
}

// Create 发布新闻。记者以 journalistId 署名；非记者的达人只能发布自己球队的新闻，
// 以 userId 署名，teamId 强制为其所属球队。
func (s *NewsService) Create(ctx context.Context, userID string, req *dto.CreateNewsRequest) (*dto.NewsItem, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.CanPublish() {
		return nil, ErrNotPublisher
	}

	category := model.Category(req.Category)
	if !model.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	contentType := model.ContentType(req.ContentType)
	if contentType == "" {
		contentType = model.ContentText
	}
	if contentType == model.ContentVideo && (req.VideoURL == nil || strings.TrimSpace(*req.VideoURL) == "") {
		return nil, ErrVideoURLRequired
	}

	n := &model.News{
		TeamID:      req.TeamID,
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		ContentType: contentType,
		Category:    category,
		IsPublished: true,
		PublishedAt: time.Now(),
	}

	if user.IsInfluencer && !user.IsJournalist() {
		if user.TeamID == nil || req.TeamID != *user.TeamID {
			return nil, ErrInfluencerTeamMismatch
		}
		n.TeamID = *user.TeamID
		n.SetAuthor(model.InfluencerAuthor{UserID: user.ID})
	} else {
		journalist, err := s.journalistRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrJournalistNotFound
			}
			return nil, err
		}
		n.SetAuthor(model.JournalistAuthor{JournalistID: journalist.ID})
	}

	exists, err := s.teamRepo.Exists(ctx, n.TeamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTeamNotFound
	}

	if err := s.newsRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	logger.Info("news created",
		zap.String("news_id", n.ID),
		zap.String("team_id", n.TeamID),
		zap.String("user_id", user.ID),
	)
	s.publish(ctx, infraKafka.EventNewsPublished, n.ID, n.TeamID, user.ID)

	items, err := s.enrich(ctx, []model.News{*n}, "")
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		item := toNewsItem(n)
		return &item, nil
	}
	return &items[0], nil
}

// MyNews 当前发布者的全部新闻（记者稿与达人稿合并）
func (s *NewsService) MyNews(ctx context.Context, userID string) ([]dto.NewsItem, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var journalistID, influencerID string
	if user.IsJournalist() {
		j, err := s.journalistRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if j != nil {
			journalistID = j.ID
		}
	}
	if user.IsInfluencer {
		influencerID = user.ID
	}

	list, err := s.newsRepo.ListByAuthors(ctx, journalistID, influencerID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list, user.ID)
}

// Delete 删除新闻，仅作者本人或管理员
func (s *NewsService) Delete(ctx context.Context, userID, newsID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	n, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewsNotFound
		}
		return err
	}

	if !user.IsAdmin() {
		owns, err := s.isAuthor(ctx, user, n)
		if err != nil {
			return err
		}
		if !owns {
			return ErrNotNewsAuthor
		}
	}

	if err := s.newsRepo.Delete(ctx, newsID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewsNotFound
		}
		return err
	}

	logger.Info("news deleted", zap.String("news_id", newsID), zap.String("user_id", user.ID))
	s.publish(ctx, infraKafka.EventNewsDeleted, newsID, n.TeamID, user.ID)
	return nil
}

func (s *NewsService) isAuthor(ctx context.Context, user *model.User, n *model.News) (bool, error) {
	switch a := n.Author().(type) {
	case model.InfluencerAuthor:
		return a.UserID == user.ID, nil
	case model.JournalistAuthor:
		j, err := s.journalistRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return j.ID == a.JournalistID, nil
	}
	return false, nil
}

// Search 全文检索，ES 不可用或出错时降级到数据库模糊匹配
func (s *NewsService) Search(ctx context.Context, q *dto.NewsSearchQuery, viewerID string) ([]dto.NewsItem, error) {
	limit, offset := normalizePage(q.Limit, q.Offset)
	keyword := strings.TrimSpace(q.Q)

	if s.searcher != nil {
		list, err := s.searchFromIndex(ctx, keyword, q.TeamID, limit, offset)
		if err == nil {
			return s.enrich(ctx, list, viewerID)
		}
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
	}

	list, err := s.newsRepo.Search(ctx, keyword, q.TeamID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list, viewerID)
}

func (s *NewsService) searchFromIndex(ctx context.Context, keyword, teamID string, limit, offset int) ([]model.News, error) {
	ids, err := s.searcher.SearchNewsIDs(ctx, keyword, teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	rows, err := s.newsRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.News, len(rows))
	for _, n := range rows {
		if n.IsPublished {
			byID[n.ID] = n
		}
	}
	ordered := make([]model.News, 0, len(ids))
	for _, id := range ids {
		if n, ok := byID[id]; ok {
			ordered = append(ordered, n)
		}
	}
	return ordered, nil
}

// Interact 点赞/点踩切换。计数在同一事务内重算，提交后评估徽章（失败只记日志）。
func (s *NewsService) Interact(ctx context.Context, userID, newsID, interactionType string) (*dto.InteractionResult, error) {
	t := model.InteractionType(strings.ToUpper(strings.TrimSpace(interactionType)))
	if !t.Valid() {
		return nil, ErrInvalidInteraction
	}

	res, err := s.interactionRepo.Toggle(ctx, userID, newsID, t)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	awardQuietly(ctx, s.badges, userID)
	s.publish(ctx, infraKafka.EventNewsInteraction, newsID, "", userID)

	out := &dto.InteractionResult{
		Removed:       res.Removed,
		LikesCount:    res.LikesCount,
		DislikesCount: res.DislikesCount,
	}
	if res.Interaction != nil {
		out.Interaction = &dto.InteractionInfo{
			ID:              res.Interaction.ID,
			UserID:          res.Interaction.UserID,
			NewsID:          res.Interaction.NewsID,
			InteractionType: string(res.Interaction.InteractionType),
			CreatedAt:       res.Interaction.CreatedAt,
		}
	}
	return out, nil
}

// publish 发送新闻事件，失败不影响请求结果
func (s *NewsService) publish(ctx context.Context, eventType, newsID, teamID, actorID string) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, eventTimeout)
	defer cancel()

	err := s.events.PublishNewsEvent(ctx, infraKafka.NewsEvent{
		Type:       eventType,
		NewsID:     newsID,
		TeamID:     teamID,
		ActorID:    actorID,
		OccurredAt: time.Now(),
	})
	if err != nil {
		logger.Warn("publish news event failed",
			zap.String("type", eventType),
			zap.String("news_id", newsID),
			zap.Error(err),
		)
	}
}
