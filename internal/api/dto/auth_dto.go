package dto

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

// RegisterRequest 注册请求，teamId 注册后不可修改
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Email    string  `json:"email" binding:"required,email,max=255"`
	Password string  `json:"password" binding:"required,min=6,max=255"`
	TeamID   *string `json:"teamId" binding:"omitempty,max=64"`
}

// SessionData 登录/注册成功后的会话信息，Token 同时写入 Cookie
type SessionData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"tokenType"`
	ExpiresIn int      `json:"expiresIn"`
	User      UserInfo `json:"user"`
}

// UserInfo 当前用户信息（不含密码）
type UserInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	TeamID       *string `json:"teamId"`
	UserType     string  `json:"userType"`
	IsInfluencer bool    `json:"isInfluencer"`
	AvatarURL    *string `json:"avatarUrl"`
}
