package repository

import (
	"strings"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern 折叠后的子串匹配 LIKE 模式（配合 *_key 列使用）
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(model.FoldKey(q)) + "%"
}

// whereKeyContains 在折叠列上做子串匹配，空查询时不加条件
func whereKeyContains(db *gorm.DB, keyColumn, q string) *gorm.DB {
	if q == "" {
		return db
	}
	return db.Where(keyColumn+` LIKE ? ESCAPE '\'`, containsPattern(q))
}

// whereKeyEquals 在折叠列上做等值匹配
func whereKeyEquals(db *gorm.DB, keyColumn, v string) *gorm.DB {
	return db.Where(keyColumn+" = ?", model.FoldKey(v))
}
