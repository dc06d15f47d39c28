package dto

import "time"

// UpdateProfileRequest 资料更新请求，字段为空表示不修改
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=255"`
}

// UpdateAvatarRequest 头像更新请求：http(s) 地址或 data:image/* base64
type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatarUrl" binding:"required"`
}

// SetInfluencerRequest 管理员设置达人标识
type SetInfluencerRequest struct {
	IsInfluencer *bool `json:"isInfluencer" binding:"required"`
}

// AdminUserInfo 管理后台用户信息，由 copier 从模型复制，不含密码
type AdminUserInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	TeamID       *string   `json:"teamId"`
	UserType     string    `json:"userType"`
	IsInfluencer bool      `json:"isInfluencer"`
	AvatarURL    *string   `json:"avatarUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
