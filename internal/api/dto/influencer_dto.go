package dto

import "brasileirao-go/internal/model"

// InfluencerApplyRequest 达人申请
type InfluencerApplyRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=2000"`
}

// ReviewRequest 审核请求
type ReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// RequestListQuery 申请列表筛选
type RequestListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// InfluencerRequestInfo 管理后台展示的申请（附申请人）
type InfluencerRequestInfo struct {
	model.InfluencerRequest
	User *AdminUserInfo `json:"user"`
}
