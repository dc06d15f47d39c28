// Package testutil 提供基于内存 SQLite 的测试数据库与数据构造工具。
package testutil

import (
	"sync/atomic"
	"testing"

	"brasileirao-go/internal/infra/database"
	"brasileirao-go/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试一个独立的内存数据库，结构迁移到最新版本
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库按连接隔离，单连接保证所有查询看到同一份数据
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db, model.All()...))
	return db
}

// NewLegacyDB 返回新闻表缺少媒体字段的 v1 结构数据库
func NewLegacyDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewDB(t)
	m := db.Migrator()
	require.NoError(t, m.DropColumn(&model.News{}, "video_url"))
	require.NoError(t, m.DropColumn(&model.News{}, "content_type"))
	_, err := database.RecordSchemaVersion(db)
	require.NoError(t, err)
	return db
}

// QueryCounter 统计经过 gorm 的查询语句条数
type QueryCounter struct {
	n atomic.Int64
}

// CountQueries 在 db 上注册查询计数回调
func CountQueries(t testing.TB, db *gorm.DB) *QueryCounter {
	t.Helper()

	c := &QueryCounter{}
	inc := func(*gorm.DB) { c.n.Add(1) }
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("testutil:count_query", inc))
	require.NoError(t, db.Callback().Row().After("gorm:row").Register("testutil:count_row", inc))
	return c
}

// Reset 清零
func (c *QueryCounter) Reset() {
	c.n.Store(0)
}

// Count 当前计数
func (c *QueryCounter) Count() int {
	return int(c.n.Load())
}
