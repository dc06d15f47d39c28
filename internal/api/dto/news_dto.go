package dto

import "time"

// NewsListQuery 新闻列表查询参数
type NewsListQuery struct {
	Filter string `form:"filter" binding:"omitempty,oneof=my-team all"`
	TeamID string `form:"teamId" binding:"omitempty,max=64"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

// NewsSearchQuery 新闻搜索参数
type NewsSearchQuery struct {
	Q      string `form:"q" binding:"required,min=1,max=200"`
	TeamID string `form:"teamId" binding:"omitempty,max=64"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

// CreateNewsRequest 发布新闻请求
type CreateNewsRequest struct {
	TeamID      string  `json:"teamId" binding:"required,max=64"`
	Category    string  `json:"category" binding:"required,oneof=NEWS ANALYSIS BACKSTAGE MARKET"`
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Content     string  `json:"content" binding:"required,min=1"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,max=2000"`
	VideoURL    *string `json:"videoUrl" binding:"omitempty,max=2000"`
	ContentType string  `json:"contentType" binding:"omitempty,oneof=TEXT VIDEO"`
}

// InteractionRequest 点赞/点踩请求，类型在服务层校验
type InteractionRequest struct {
	Type string `json:"type" binding:"required"`
}

// TeamSummary 新闻中内嵌的球队信息
type TeamSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// AuthorSummary 作者展示信息
type AuthorSummary struct {
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// JournalistSummary 署名信息；达人稿没有 id
type JournalistSummary struct {
	ID   *string       `json:"id,omitempty"`
	User AuthorSummary `json:"user"`
}

// NewsItem 新闻列表项
type NewsItem struct {
	ID              string             `json:"id"`
	JournalistID    *string            `json:"journalistId"`
	UserID          *string            `json:"userId"`
	TeamID          string             `json:"teamId"`
	Title           string             `json:"title"`
	Content         string             `json:"content"`
	ImageURL        *string            `json:"imageUrl"`
	VideoURL        *string            `json:"videoUrl"`
	ContentType     string             `json:"contentType"`
	Category        string             `json:"category"`
	LikesCount      int64              `json:"likesCount"`
	DislikesCount   int64              `json:"dislikesCount"`
	IsPublished     bool               `json:"isPublished"`
	PublishedAt     time.Time          `json:"publishedAt"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Team            *TeamSummary       `json:"team"`
	Journalist      *JournalistSummary `json:"journalist"`
	Author          *AuthorSummary     `json:"author"`
	UserInteraction *string            `json:"userInteraction"`
}

// InteractionInfo 互动记录
type InteractionInfo struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	NewsID          string    `json:"newsId"`
	InteractionType string    `json:"interactionType"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InteractionResult 互动切换结果；Removed 为 true 时 Interaction 为空
type InteractionResult struct {
	Interaction   *InteractionInfo `json:"interaction,omitempty"`
	Removed       bool             `json:"removed"`
	LikesCount    int64            `json:"likesCount"`
	DislikesCount int64            `json:"dislikesCount"`
}
