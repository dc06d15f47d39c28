package model

import (
	"time"

	"gorm.io/gorm"
)

// PlayerRating 球迷对球员单场表现的评分（0-10），同一用户同一场同一球员只保留一条
type PlayerRating struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:uq_player_rating;index" json:"userId"`
	PlayerID  string    `gorm:"size:36;not null;uniqueIndex:uq_player_rating" json:"playerId"`
	MatchID   string    `gorm:"size:36;not null;uniqueIndex:uq_player_rating" json:"matchId"`
	Rating    int       `gorm:"not null;check:chk_player_ratings_rating,rating >= 0 AND rating <= 10" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (PlayerRating) TableName() string {
	return "player_ratings"
}

func (r *PlayerRating) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}
