package dto

import (
	"time"

	"brasileirao-go/internal/model"
)

// BadgeStatus 徽章及当前用户的解锁状态
type BadgeStatus struct {
	model.Badge
	Unlocked bool       `json:"unlocked"`
	EarnedAt *time.Time `json:"earnedAt"`
}
