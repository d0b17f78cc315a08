package repository

import (
	"context"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
)

// StudySpecRepository 专业方向数据访问接口
type StudySpecRepository interface {
	Create(ctx context.Context, spec *model.StudySpecialization) error
	GetByID(ctx context.Context, id int64) (*model.StudySpecialization, error)
	// FindDuplicate 同一院系 + 学习形式 + 学位层次下，名称或别名（大小写不敏感）相同的记录
	FindDuplicate(ctx context.Context, spec *model.StudySpecialization) (*model.StudySpecialization, error)
	SearchNames(ctx context.Context, query string, departmentID int64) ([]string, error)
	// ListByDepartment 预加载 StudyType / StudyDegree
	ListByDepartment(ctx context.Context, departmentID int64) ([]model.StudySpecialization, error)
}

type studySpecRepo struct {
	db *gorm.DB
}

// NewStudySpecRepo 创建 StudySpecRepository 实例
func NewStudySpecRepo(db *gorm.DB) StudySpecRepository {
	return &studySpecRepo{db: db}
}

func (r *studySpecRepo) Create(ctx context.Context, spec *model.StudySpecialization) error {
	return r.db.WithContext(ctx).Omit("StudyType", "StudyDegree", "Department").Create(spec).Error
}

func (r *studySpecRepo) GetByID(ctx context.Context, id int64) (*model.StudySpecialization, error) {
	var spec model.StudySpecialization
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&spec).Error
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *studySpecRepo) FindDuplicate(ctx context.Context, spec *model.StudySpecialization) (*model.StudySpecialization, error) {
	var existing model.StudySpecialization
	err := r.db.WithContext(ctx).
		Where("department_id = ? AND study_type_id = ? AND study_degree_id = ?",
			spec.DepartmentID, spec.StudyTypeID, spec.StudyDegreeID).
		Where("(name_key = ? OR alias_key = ?)", model.FoldKey(spec.Name), model.FoldKey(spec.Alias)).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *studySpecRepo) SearchNames(ctx context.Context, query string, departmentID int64) ([]string, error) {
	names := make([]string, 0)
	db := r.db.WithContext(ctx).Model(&model.StudySpecialization{})
	if departmentID > 0 {
		db = db.Where("department_id = ?", departmentID)
	}
	err := whereKeyContains(db, "name_key", query).
		Distinct().
		Pluck("name", &names).Error
	return names, err
}

func (r *studySpecRepo) ListByDepartment(ctx context.Context, departmentID int64) ([]model.StudySpecialization, error) {
	var specs []model.StudySpecialization
	err := r.db.WithContext(ctx).
		Preload("StudyType").
		Preload("StudyDegree").
		Where("department_id = ?", departmentID).
		Order("name ASC").
		Order("id ASC").
		Find(&specs).Error
	return specs, err
}
