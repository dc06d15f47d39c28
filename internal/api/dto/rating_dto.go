package dto

import "brasileirao-go/internal/model"

// CreateRatingRequest 球员评分请求
type CreateRatingRequest struct {
	MatchID string  `json:"matchId" binding:"required"`
	Rating  *int    `json:"rating" binding:"required,min=0,max=10"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

// PlayerRatings 球员评分列表及平均分
type PlayerRatings struct {
	Ratings []model.PlayerRating `json:"ratings"`
	Average *float64             `json:"average"`
}
