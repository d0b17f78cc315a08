package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
)

// LookupRepository 字典表与跨表名称/ID 查询接口
type LookupRepository interface {
	ListStudyTypes(ctx context.Context) ([]model.StudyType, error)
	ListStudyDegrees(ctx context.Context) ([]model.StudyDegree, error)
	ListSemesters(ctx context.Context) ([]model.Semester, error)
	ListRoomTypes(ctx context.Context) ([]model.RoomType, error)
	ListSubjectTypes(ctx context.Context, query string) ([]model.SubjectType, error)
	ListRoles(ctx context.Context) ([]model.Role, error)

	// Exists 判断指定类型的实体是否存在
	Exists(ctx context.Context, kind model.EntityKind, id int64) (bool, error)
	// FindByNames 名称精确匹配（区分大小写），按 id 升序返回
	FindByNames(ctx context.Context, kind model.EntityKind, names []string) ([]model.NamedRow, error)
	FindByIDs(ctx context.Context, kind model.EntityKind, ids []int64) ([]model.NamedRow, error)
}

type lookupRepo struct {
	db *gorm.DB
}

// NewLookupRepo 创建 LookupRepository 实例
func NewLookupRepo(db *gorm.DB) LookupRepository {
	return &lookupRepo{db: db}
}

func (r *lookupRepo) ListStudyTypes(ctx context.Context) ([]model.StudyType, error) {
	var types []model.StudyType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}

func (r *lookupRepo) ListStudyDegrees(ctx context.Context) ([]model.StudyDegree, error) {
	var degrees []model.StudyDegree
	err := r.db.WithContext(ctx).Order("id ASC").Find(&degrees).Error
	return degrees, err
}

func (r *lookupRepo) ListSemesters(ctx context.Context) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).Order("number ASC").Find(&semesters).Error
	return semesters, err
}

func (r *lookupRepo) ListRoomTypes(ctx context.Context) ([]model.RoomType, error) {
	var types []model.RoomType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}

func (r *lookupRepo) ListSubjectTypes(ctx context.Context, query string) ([]model.SubjectType, error) {
	var types []model.SubjectType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	if query == "" {
		return types, nil
	}

	// 字典表无折叠列，条目很少，直接在内存中过滤
	key := model.FoldKey(query)
	matched := make([]model.SubjectType, 0, len(types))
	for _, t := range types {
		if strings.Contains(model.FoldKey(t.Name), key) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *lookupRepo) ListRoles(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *lookupRepo) Exists(ctx context.Context, kind model.EntityKind, id int64) (bool, error) {
	table, err := tableOf(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *lookupRepo) FindByNames(ctx context.Context, kind model.EntityKind, names []string) ([]model.NamedRow, error) {
	table, err := tableOf(kind)
	if err != nil {
		return nil, err
	}
	var rows []model.NamedRow
	err = r.db.WithContext(ctx).
		Table(table).
		Select("id, name").
		Where("name IN ?", names).
		Order("id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *lookupRepo) FindByIDs(ctx context.Context, kind model.EntityKind, ids []int64) ([]model.NamedRow, error) {
	table, err := tableOf(kind)
	if err != nil {
		return nil, err
	}

	var rows []model.NamedRow
	err = r.db.WithContext(ctx).
		Table(table).
		Select("id, name").
		Where("id IN ?", ids).
		Order("id ASC").
		Scan(&rows).Error
	return rows, err
}

func tableOf(kind model.EntityKind) (string, error) {
	table := kind.Table()
	if table == "" {
		return "", fmt.Errorf("未知实体类型 %q", kind)
	}
	return table, nil
}
