package database

import (
	"errors"
	"fmt"
	"testing"

	"brasileirao-go/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestSchemaVersionRecorded(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, AutoMigrate(db, model.All()...))
	assert.Equal(t, model.SchemaV2, LoadSchemaVersion(db))

	m := db.Migrator()
	require.NoError(t, m.DropColumn(&model.News{}, "video_url"))
	// 记录未更新前仍返回旧值
	assert.Equal(t, model.SchemaV2, LoadSchemaVersion(db))

	version, err := RecordSchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, model.SchemaV1, version)
	assert.Equal(t, model.SchemaV1, LoadSchemaVersion(db))
}

func TestLoadSchemaVersionWithoutTable(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(&model.News{}))
	assert.Equal(t, model.SchemaV2, LoadSchemaVersion(db))
}

func TestIsUndefinedColumn(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42703", Message: `column "video_url" does not exist`}
	assert.True(t, IsUndefinedColumn(pgErr))
	assert.True(t, IsUndefinedColumn(fmt.Errorf("query news: %w", pgErr)))
	assert.False(t, IsUndefinedColumn(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsUndefinedColumn(errors.New(`column "video_url" does not exist`)))
	assert.False(t, IsUndefinedColumn(nil))
}
