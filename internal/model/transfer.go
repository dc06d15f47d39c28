package model

import (
	"time"

	"gorm.io/gorm"
)

// TransferType 转会方向
type TransferType string

const (
	TransferIn   TransferType = "IN"
	TransferOut  TransferType = "OUT"
	TransferLoan TransferType = "LOAN"
)

// Valid 是否为合法转会类型
func (t TransferType) Valid() bool {
	switch t {
	case TransferIn, TransferOut, TransferLoan:
		return true
	}
	return false
}

// Transfer 球队转会动态，由种子文件维护
type Transfer struct {
	ID           string       `gorm:"primaryKey;size:36" json:"id" yaml:"id"`
	TeamID       string       `gorm:"size:64;not null;index:idx_transfers_team_date" json:"teamId" yaml:"team_id"`
	PlayerName   string       `gorm:"size:255;not null" json:"playerName" yaml:"player_name"`
	FromTeam     string       `gorm:"size:255;not null" json:"fromTeam" yaml:"from_team"`
	ToTeam       string       `gorm:"size:255;not null" json:"toTeam" yaml:"to_team"`
	TransferType TransferType `gorm:"size:10;not null" json:"transferType" yaml:"transfer_type"`
	Fee          *string      `gorm:"size:64;comment:转会费展示文本" json:"fee" yaml:"fee"`
	TransferDate time.Time    `gorm:"not null;index:idx_transfers_team_date" json:"transferDate" yaml:"transfer_date"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"createdAt" yaml:"-"`
}

func (Transfer) TableName() string {
	return "transfers"
}

func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	newID(&t.ID)
	return nil
}
