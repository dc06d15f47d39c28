package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// 每个模型单独迁移，索引标签错误会在这里暴露
func TestEveryModelMigrates(t *testing.T) {
	for _, m := range All() {
		m := m
		t.Run(fmt.Sprintf("%T", m), func(t *testing.T) {
			db := openMemory(t)
			require.NoError(t, db.AutoMigrate(m))
			assert.True(t, db.Migrator().HasTable(m))
		})
	}
}

func TestInfluencerActiveIndex(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, db.AutoMigrate(&InfluencerRequest{}))
	require.True(t, db.Migrator().HasIndex(&InfluencerRequest{}, "uq_influencer_active"))

	var ddl string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'index' AND name = ?", "uq_influencer_active").Scan(&ddl).Error)
	assert.Contains(t, ddl, "status <> 'REJECTED'")

	create := func(status RequestStatus) error {
		return db.Create(&InfluencerRequest{UserID: "u1", Reason: "quero postar", Status: status}).Error
	}

	// 被拒绝的申请可以有多条
	require.NoError(t, create(RequestRejected))
	require.NoError(t, create(RequestRejected))

	require.NoError(t, create(RequestPending))
	assert.ErrorIs(t, create(RequestPending), gorm.ErrDuplicatedKey)

	now := time.Now()
	require.NoError(t, db.Model(&InfluencerRequest{}).
		Where("user_id = ? AND status = ?", "u1", RequestPending).
		Updates(map[string]interface{}{"status": RequestApproved, "reviewed_at": now}).Error)
	assert.ErrorIs(t, create(RequestPending), gorm.ErrDuplicatedKey)
}
