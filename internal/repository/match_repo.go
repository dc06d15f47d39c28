package repository

import (
	"context"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
)

// LineupEntry 比赛出场球员
type LineupEntry struct {
	model.Player
	WasStarter bool
}

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// ListPlayersByTeam 球队阵容，按球衣号排序
func (r *MatchRepository) ListPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	var players []model.Player
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("jersey_number ASC").Find(&players).Error
	return players, err
}

// GetPlayer 查询球员
func (r *MatchRepository) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	var player model.Player
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// GetMatch 查询比赛
func (r *MatchRepository) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	var match model.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// Recent 最近比赛，按比赛时间倒序
func (r *MatchRepository) Recent(ctx context.Context, teamID string, limit int) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("match_date DESC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}

// Upcoming 未开赛的比赛，按时间正序
func (r *MatchRepository) Upcoming(ctx context.Context, teamID string, limit int) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, model.MatchScheduled).
		Order("match_date ASC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}

// LastFinished 最近一场已结束的比赛
func (r *MatchRepository) LastFinished(ctx context.Context, teamID string) (*model.Match, error) {
	var match model.Match
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, model.MatchFinished).
		Order("match_date DESC").
		Take(&match).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Lineup 一次 JOIN 取出比赛的全部出场球员
func (r *MatchRepository) Lineup(ctx context.Context, matchID string) ([]LineupEntry, error) {
	var entries []LineupEntry
	err := r.db.WithContext(ctx).
		Table("match_players").
		Select("players.*, match_players.was_starter").
		Joins("JOIN players ON players.id = match_players.player_id").
		Where("match_players.match_id = ?", matchID).
		Order("match_players.was_starter DESC").
		Order("players.jersey_number ASC").
		Scan(&entries).Error
	return entries, err
}

// PlayedIn 球员是否出现在该场比赛名单中
func (r *MatchRepository) PlayedIn(ctx context.Context, playerID, matchID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MatchPlayer{}).
		Where("player_id = ? AND match_id = ?", playerID, matchID).
		Count(&count).Error
	return count > 0, err
}
