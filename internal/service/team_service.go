package service

import (
	"context"
	"errors"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"

	"gorm.io/gorm"
)

const (
	cacheKeyTeams     = "teams:all"
	cacheKeyStandings = "teams:standings"

	defaultRecentLimit   = 10
	defaultUpcomingLimit = 3
	defaultTransferLimit = 10
)

type TeamService struct {
	teamRepo     *repository.TeamRepository
	matchRepo    *repository.MatchRepository
	ratingRepo   *repository.RatingRepository
	transferRepo *repository.TransferRepository
	cache        Cache
}

func NewTeamService(
	teamRepo *repository.TeamRepository,
	matchRepo *repository.MatchRepository,
	ratingRepo *repository.RatingRepository,
	transferRepo *repository.TransferRepository,
) *TeamService {
	return &TeamService{
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		ratingRepo:   ratingRepo,
		transferRepo: transferRepo,
	}
}

// WithCache 启用球队列表与积分榜缓存
func (s *TeamService) WithCache(cache Cache) *TeamService {
	s.cache = cache
	return s
}

// List 全部球队
func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	return s.cached(ctx, cacheKeyTeams, s.teamRepo.List)
}

// Standings 积分榜
func (s *TeamService) Standings(ctx context.Context) ([]model.Team, error) {
	return s.cached(ctx, cacheKeyStandings, s.teamRepo.Standings)
}

func (s *TeamService) cached(ctx context.Context, key string, load func(context.Context) ([]model.Team, error)) ([]model.Team, error) {
	if s.cache != nil {
		var teams []model.Team
		if s.cache.Get(ctx, key, &teams) {
			return teams, nil
		}
	}
	teams, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, teams)
	}
	return teams, nil
}

// InvalidateCache 种子数据写入后清理缓存
func (s *TeamService) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cacheKeyTeams, cacheKeyStandings)
}

// Get 球队详情及阵容
func (s *TeamService) Get(ctx context.Context, id string) (*dto.TeamDetail, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	players, err := s.matchRepo.ListPlayersByTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []model.Player{}
	}
	return &dto.TeamDetail{Team: *team, Players: players}, nil
}

// RecentMatches 最近比赛
func (s *TeamService) RecentMatches(ctx context.Context, teamID string, limit int) ([]model.Match, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	matches, err := s.matchRepo.Recent(ctx, teamID, limit)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return matches, nil
}

// Upcoming 未来比赛
func (s *TeamService) Upcoming(ctx context.Context, teamID string, limit int) ([]model.Match, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	matches, err := s.matchRepo.Upcoming(ctx, teamID, limit)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return matches, nil
}

// Transfers 球队最近转会
func (s *TeamService) Transfers(ctx context.Context, teamID string, limit int) ([]model.Transfer, error) {
	if limit <= 0 {
		limit = defaultTransferLimit
	}
	transfers, err := s.transferRepo.ListByTeam(ctx, teamID, limit)
	if err != nil {
		return nil, err
	}
	if transfers == nil {
		transfers = []model.Transfer{}
	}
	return transfers, nil
}

// LastMatch 最近一场已结束比赛，附每名球员的平均分；viewerID 非空时附上其本人评分。
// 没有已结束比赛时返回 nil。平均分与个人评分各一次批量查询。
func (s *TeamService) LastMatch(ctx context.Context, teamID, viewerID string) (*dto.LastMatch, error) {
	match, err := s.matchRepo.LastFinished(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	lineup, err := s.matchRepo.Lineup(ctx, match.ID)
	if err != nil {
		return nil, err
	}
	averages, err := s.ratingRepo.AveragesForMatch(ctx, match.ID)
	if err != nil {
		return nil, err
	}
	var mine map[string]int
	if viewerID != "" {
		if mine, err = s.ratingRepo.UserRatingsForMatch(ctx, viewerID, match.ID); err != nil {
			return nil, err
		}
	}

	players := make([]dto.LineupPlayer, 0, len(lineup))
	for _, entry := range lineup {
		p := dto.LineupPlayer{Player: entry.Player, WasStarter: entry.WasStarter}
		if avg, ok := averages[entry.ID]; ok {
			v := avg
			p.AverageRating = &v
		}
		if r, ok := mine[entry.ID]; ok {
			v := r
			p.UserRating = &v
		}
		players = append(players, p)
	}
	return &dto.LastMatch{Match: *match, Players: players}, nil
}
