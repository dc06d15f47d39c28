package model

import (
	"time"

	"gorm.io/gorm"
)

// UserType 用户类型
type UserType string

const (
	UserTypeFan        UserType = "FAN"
	UserTypeJournalist UserType = "JOURNALIST"
	UserTypeAdmin      UserType = "ADMIN"
)

// User 用户模型，不做物理删除
type User struct {
	ID           string    `gorm:"primaryKey;size:36;comment:用户标识" json:"id"`
	Name         string    `gorm:"size:255;not null;comment:昵称" json:"name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	Password     string    `gorm:"size:255;not null;comment:密码哈希" json:"-"`
	UserType     UserType  `gorm:"size:20;not null;default:'FAN';comment:用户类型" json:"userType"`
	IsInfluencer bool      `gorm:"not null;default:false;comment:是否为认证达人" json:"isInfluencer"`
	TeamID       *string   `gorm:"size:64;index;comment:支持的球队，注册后不可修改" json:"teamId"`
	AvatarURL    *string   `gorm:"type:text;comment:头像地址或 data URL" json:"avatarUrl"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// IsJournalist 是否记者
func (u *User) IsJournalist() bool {
	return u.UserType == UserTypeJournalist
}

// CanPublish 记者或达人可以发布新闻
func (u *User) CanPublish() bool {
	return u.IsJournalist() || u.IsInfluencer
}
