package repository

import (
	"context"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
)

// DepartmentRepository 院系数据访问接口
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	// FindByNameOrAlias 名称或别名任一（大小写不敏感）相同即返回，均不存在时返回 gorm.ErrRecordNotFound
	FindByNameOrAlias(ctx context.Context, name, alias string) (*model.Department, error)
	// SearchNames 返回名称包含 query（大小写不敏感）的院系名，query 为空时返回全部
	SearchNames(ctx context.Context, query string) ([]string, error)
	ListPage(ctx context.Context, query string, offset, limit int) ([]model.Department, int64, error)
	ListWithStudySpecs(ctx context.Context) ([]model.Department, error)
	BatchCountStudySpecs(ctx context.Context, departmentIDs []int64) (map[int64]int64, error)
}

// departmentRepo DepartmentRepository 的 GORM 实现
type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) FindByNameOrAlias(ctx context.Context, name, alias string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Where("name_key = ? OR alias_key = ?", model.FoldKey(name), model.FoldKey(alias)).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) SearchNames(ctx context.Context, query string) ([]string, error) {
	names := make([]string, 0)
	err := whereKeyContains(r.db.WithContext(ctx).Model(&model.Department{}), "name_key", query).
		Pluck("name", &names).Error
	return names, err
}

func (r *departmentRepo) ListPage(ctx context.Context, query string, offset, limit int) ([]model.Department, int64, error) {
	var (
		depts []model.Department
		total int64
	)
	scoped := func() *gorm.DB {
		return whereKeyContains(r.db.WithContext(ctx).Model(&model.Department{}), "name_key", query)
	}

	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := scoped().Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&depts).Error
	return depts, total, err
}

func (r *departmentRepo) ListWithStudySpecs(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := r.db.WithContext(ctx).
		Preload("StudySpecializations", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("StudySpecializations.StudyType").
		Preload("StudySpecializations.StudyDegree").
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *departmentRepo) BatchCountStudySpecs(ctx context.Context, departmentIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(departmentIDs))
	if len(departmentIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		DepartmentID int64
		Count        int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.StudySpecialization{}).
		Select("department_id, COUNT(*) AS count").
		Where("department_id IN ?", departmentIDs).
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.DepartmentID] = row.Count
	}
	return result, nil
}
