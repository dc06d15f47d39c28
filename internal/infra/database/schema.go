package database

import (
	"errors"
	"fmt"
	"time"

	"brasileirao-go/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLSTATE undefined_column
const undefinedColumn = "42703"

// DetectSchemaVersion 根据新闻表实际列推断结构版本
func DetectSchemaVersion(db *gorm.DB) int {
	m := db.Migrator()
	if m.HasColumn(&model.News{}, "video_url") && m.HasColumn(&model.News{}, "content_type") {
		return model.SchemaV2
	}
	return model.SchemaV1
}

// RecordSchemaVersion 探测并写入 schema_versions 单行表
func RecordSchemaVersion(db *gorm.DB) (int, error) {
	version := DetectSchemaVersion(db)
	row := model.SchemaVersion{ID: 1, Version: version, AppliedAt: time.Now()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "applied_at"}),
	}).Create(&row).Error
	if err != nil {
		return 0, fmt.Errorf("record schema version: %w", err)
	}
	return version, nil
}

// LoadSchemaVersion 读取已记录的结构版本，表或记录缺失时现场探测
func LoadSchemaVersion(db *gorm.DB) int {
	var row model.SchemaVersion
	if err := db.Take(&row, 1).Error; err == nil && row.Version > 0 {
		return row.Version
	}
	return DetectSchemaVersion(db)
}

// IsUndefinedColumn 判断是否为 PostgreSQL 列不存在错误
func IsUndefinedColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedColumn
}
