package model

import (
	"time"

	"gorm.io/gorm"
)

// ContentType 新闻内容类型
type ContentType string

const (
	ContentText  ContentType = "TEXT"
	ContentVideo ContentType = "VIDEO"
)

// Category 新闻分类
type Category string

const (
	CategoryNews      Category = "NEWS"
	CategoryAnalysis  Category = "ANALYSIS"
	CategoryBackstage Category = "BACKSTAGE"
	CategoryMarket    Category = "MARKET"
)

// ValidCategory 校验分类取值
func ValidCategory(c Category) bool {
	switch c {
	case CategoryNews, CategoryAnalysis, CategoryBackstage, CategoryMarket:
		return true
	}
	return false
}

// News 新闻。JournalistID 与 UserID 二选一，分别对应记者稿与达人稿。
// LikesCount/DislikesCount 为冗余计数，每次互动后按互动表重算。
type News struct {
	ID            string      `gorm:"primaryKey;size:36;comment:新闻标识" json:"id"`
	JournalistID  *string     `gorm:"size:36;index;comment:记者作者" json:"journalistId"`
	UserID        *string     `gorm:"size:36;index;comment:达人作者" json:"userId"`
	TeamID        string      `gorm:"size:64;not null;index:idx_news_team_published;comment:所属球队" json:"teamId"`
	Title         string      `gorm:"size:255;not null" json:"title"`
	Content       string      `gorm:"type:text;not null" json:"content"`
	ImageURL      *string     `gorm:"type:text" json:"imageUrl"`
	VideoURL      *string     `gorm:"type:text" json:"videoUrl"`
	ContentType   ContentType `gorm:"size:10;not null;default:'TEXT'" json:"contentType"`
	Category      Category    `gorm:"size:20;not null" json:"category"`
	LikesCount    int64       `gorm:"not null;default:0" json:"likesCount"`
	DislikesCount int64       `gorm:"not null;default:0" json:"dislikesCount"`
	IsPublished   bool        `gorm:"not null;default:true;index" json:"isPublished"`
	PublishedAt   time.Time   `gorm:"not null;index:idx_news_team_published" json:"publishedAt"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (News) TableName() string {
	return "news"
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	newID(&n.ID)
	if n.PublishedAt.IsZero() {
		n.PublishedAt = time.Now()
	}
	if n.ContentType == "" {
		n.ContentType = ContentText
	}
	return nil
}

// Author 新闻署名：记者或达人，二者必居其一
type Author interface {
	isAuthor()
}

// JournalistAuthor 记者署名
type JournalistAuthor struct {
	JournalistID string
}

// InfluencerAuthor 达人署名
type InfluencerAuthor struct {
	UserID string
}

func (JournalistAuthor) isAuthor() {}
func (InfluencerAuthor) isAuthor() {}

// Author 返回署名；两个字段都为空时返回 nil
func (n *News) Author() Author {
	if n.JournalistID != nil && *n.JournalistID != "" {
		return JournalistAuthor{JournalistID: *n.JournalistID}
	}
	if n.UserID != nil && *n.UserID != "" {
		return InfluencerAuthor{UserID: *n.UserID}
	}
	return nil
}

// SetAuthor 按署名写入对应外键
func (n *News) SetAuthor(a Author) {
	n.JournalistID, n.UserID = nil, nil
	switch v := a.(type) {
	case JournalistAuthor:
		id := v.JournalistID
		n.JournalistID = &id
	case InfluencerAuthor:
		id := v.UserID
		n.UserID = &id
	}
}

// InteractionType 互动类型
type InteractionType string

const (
	InteractionLike    InteractionType = "LIKE"
	InteractionDislike InteractionType = "DISLIKE"
)

// Valid 是否为合法互动类型
func (t InteractionType) Valid() bool {
	return t == InteractionLike || t == InteractionDislike
}

// NewsInteraction 新闻点赞/点踩，每个用户对每条新闻至多一条
type NewsInteraction struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	UserID          string          `gorm:"size:36;not null;uniqueIndex:uq_user_news_interaction" json:"userId"`
	NewsID          string          `gorm:"size:36;not null;uniqueIndex:uq_user_news_interaction;index" json:"newsId"`
	InteractionType InteractionType `gorm:"size:10;not null" json:"interactionType"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

func (NewsInteraction) TableName() string {
	return "news_interactions"
}

func (i *NewsInteraction) BeforeCreate(tx *gorm.DB) error {
	newID(&i.ID)
	return nil
}
