package service

import (
	"context"
	"errors"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrPlayerNotFound   = errors.New("Jogador não encontrado")
	ErrMatchNotFound    = errors.New("Partida não encontrada")
	ErrPlayerNotInMatch = errors.New("Jogador não participou desta partida")
	ErrRatingOutOfRange = errors.New("A nota deve estar entre 0 e 10")
)

type RatingService struct {
	ratingRepo *repository.RatingRepository
	matchRepo  *repository.MatchRepository
	badges     BadgeEvaluator
}

func NewRatingService(ratingRepo *repository.RatingRepository, matchRepo *repository.MatchRepository, badges BadgeEvaluator) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, matchRepo: matchRepo, badges: badges}
}

// Rate 评分（同一用户同一场同一球员覆盖旧评分），随后评估徽章
func (s *RatingService) Rate(ctx context.Context, userID, playerID string, req *dto.CreateRatingRequest) (*model.PlayerRating, error) {
	if req.Rating == nil || *req.Rating < 0 || *req.Rating > 10 {
		return nil, ErrRatingOutOfRange
	}

	if _, err := s.matchRepo.GetPlayer(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	if _, err := s.matchRepo.GetMatch(ctx, req.MatchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	played, err := s.matchRepo.PlayedIn(ctx, playerID, req.MatchID)
	if err != nil {
		return nil, err
	}
	if !played {
		return nil, ErrPlayerNotInMatch
	}

	rating, err := s.ratingRepo.Upsert(ctx, &model.PlayerRating{
		UserID:   userID,
		PlayerID: playerID,
		MatchID:  req.MatchID,
		Rating:   *req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return nil, err
	}

	awardQuietly(ctx, s.badges, userID)
	return rating, nil
}

// ListForPlayer 球员评分与平均分
func (s *RatingService) ListForPlayer(ctx context.Context, playerID string) (*dto.PlayerRatings, error) {
	ratings, err := s.ratingRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []model.PlayerRating{}
	}
	avg, err := s.ratingRepo.AverageByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return &dto.PlayerRatings{Ratings: ratings, Average: avg}, nil
}
