package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
	"schedule-management/backend/internal/repository"
	pkgerrors "schedule-management/backend/pkg/errors"
)

// ── 各模块共用的查重 / 检索辅助 ──

// 被引用实体不存在时的通用错误
var (
	ErrDepartmentNotFound  = fmt.Errorf("%w: 院系不存在", pkgerrors.ErrNotFound)
	ErrStudyTypeNotFound   = fmt.Errorf("%w: 学习形式不存在", pkgerrors.ErrNotFound)
	ErrStudyDegreeNotFound = fmt.Errorf("%w: 学位层次不存在", pkgerrors.ErrNotFound)
	ErrSemesterNotFound    = fmt.Errorf("%w: 学期不存在", pkgerrors.ErrNotFound)
	ErrRoomTypeNotFound    = fmt.Errorf("%w: 教室类型不存在", pkgerrors.ErrNotFound)
	ErrSubjectTypeNotFound = fmt.Errorf("%w: 课程类型不存在", pkgerrors.ErrNotFound)
)

// normalizeQuery 检索词去首尾空白，空白串视为不过滤
func normalizeQuery(q string) string {
	return strings.TrimSpace(q)
}

// sortedNames 按默认字符串顺序升序排序，结果永不为 nil
func sortedNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

// isNotFound 统一判断 GORM 未命中
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicateKey 唯一索引冲突（并发创建时查重与插入之间的竞态由数据库兜底）
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// ensureExists 校验被引用实体存在，不存在时返回 notFound
func ensureExists(ctx context.Context, lookup repository.LookupRepository, kind model.EntityKind, id int64, notFound error) error {
	ok, err := lookup.Exists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}

// isDomainNotFound 业务层的"不存在"错误无需记录为系统错误
func isDomainNotFound(err error) bool {
	return errors.Is(err, pkgerrors.ErrNotFound)
}
