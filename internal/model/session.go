package model

import (
	"time"

	"gorm.io/datatypes"
)

// Session 服务端会话，Cookie 中只保存签名后的 SID
type Session struct {
	SID    string         `gorm:"column:sid;primaryKey;size:64" json:"sid"`
	Sess   datatypes.JSON `gorm:"column:sess;not null" json:"sess"`
	Expire time.Time      `gorm:"column:expire;not null;index:idx_session_expire" json:"expire"`
}

func (Session) TableName() string {
	return "user_sessions"
}

// SessionData 会话载荷。角色信息不在此缓存，每次请求从用户表读取。
type SessionData struct {
	UserID    string `json:"userId"`
	UserAgent string `json:"userAgent,omitempty"`
}

// SchemaVersion 单行表，记录当前数据库结构版本
type SchemaVersion struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Version   int       `gorm:"not null" json:"version"`
	AppliedAt time.Time `gorm:"not null" json:"appliedAt"`
}

func (SchemaVersion) TableName() string {
	return "schema_versions"
}

const (
	// SchemaV1 新闻表尚无 video_url / content_type
	SchemaV1 = 1
	// SchemaV2 新闻表包含媒体字段
	SchemaV2 = 2
	// SchemaLatest 当前代码期望的版本
	SchemaLatest = SchemaV2
)
