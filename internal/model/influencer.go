package model

import (
	"time"

	"gorm.io/gorm"
)

// RequestStatus 达人申请状态
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// InfluencerRequest 达人认证申请。每个用户同时最多一条 PENDING 或 APPROVED 记录，
// 由部分唯一索引兜底。gorm 按逗号切分索引参数，where 条件里不能出现逗号。
type InfluencerRequest struct {
	ID         string        `gorm:"primaryKey;size:36" json:"id"`
	UserID     string        `gorm:"size:36;not null;index;uniqueIndex:uq_influencer_active,where:status <> 'REJECTED'" json:"userId"`
	Reason     string        `gorm:"type:text;not null" json:"reason"`
	Status     RequestStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	ReviewedBy *string       `gorm:"size:36" json:"reviewedBy"`
	ReviewedAt *time.Time    `json:"reviewedAt"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"createdAt"`
}

func (InfluencerRequest) TableName() string {
	return "influencer_requests"
}

func (r *InfluencerRequest) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}
