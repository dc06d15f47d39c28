package model

import (
	"time"

	"gorm.io/gorm"
)

// Journalist 记者资料，与 JOURNALIST 用户一对一
type Journalist struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"size:36;not null;uniqueIndex" json:"userId"`
	Organization   string    `gorm:"size:255;not null" json:"organization"`
	ProfessionalID *string   `gorm:"size:64" json:"professionalId"`
	Status         string    `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Journalist) TableName() string {
	return "journalists"
}

func (j *Journalist) BeforeCreate(tx *gorm.DB) error {
	newID(&j.ID)
	return nil
}
