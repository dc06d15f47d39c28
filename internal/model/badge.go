package model

import (
	"time"

	"gorm.io/gorm"
)

// BadgeCondition 徽章触发条件
type BadgeCondition string

const (
	ConditionSignup           BadgeCondition = "signup"
	ConditionPlayerRatings    BadgeCondition = "player_ratings"
	ConditionNewsInteractions BadgeCondition = "news_interactions"
)

// Badge 徽章定义，来自种子数据
type Badge struct {
	ID          string         `gorm:"primaryKey;size:64" json:"id" yaml:"id"`
	Name        string         `gorm:"size:255;not null" json:"name" yaml:"name"`
	Description string         `gorm:"type:text;not null" json:"description" yaml:"description"`
	Icon        string         `gorm:"size:64;not null" json:"icon" yaml:"icon"`
	Condition   BadgeCondition `gorm:"size:32;not null" json:"condition" yaml:"condition"`
	Threshold   int64          `gorm:"not null;default:0" json:"threshold" yaml:"threshold"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge 用户已获得的徽章
type UserBadge struct {
	ID       string    `gorm:"primaryKey;size:36" json:"id"`
	UserID   string    `gorm:"size:36;not null;uniqueIndex:uq_user_badge" json:"userId"`
	BadgeID  string    `gorm:"size:64;not null;uniqueIndex:uq_user_badge" json:"badgeId"`
	EarnedAt time.Time `gorm:"not null" json:"earnedAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}

func (ub *UserBadge) BeforeCreate(tx *gorm.DB) error {
	newID(&ub.ID)
	if ub.EarnedAt.IsZero() {
		ub.EarnedAt = time.Now()
	}
	return nil
}
