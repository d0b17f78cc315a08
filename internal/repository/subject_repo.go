package repository

import (
	"context"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
)

// SubjectRepository 课程数据访问接口
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	FindByName(ctx context.Context, departmentID int64, name string) (*model.Subject, error)
	SearchNames(ctx context.Context, query string, departmentID int64) ([]string, error)
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo 创建 SubjectRepository 实例
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) FindByName(ctx context.Context, departmentID int64, name string) (*model.Subject, error) {
	var subject model.Subject
	err := whereKeyEquals(r.db.WithContext(ctx).Where("department_id = ?", departmentID), "name_key", name).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) SearchNames(ctx context.Context, query string, departmentID int64) ([]string, error) {
	names := make([]string, 0)
	db := r.db.WithContext(ctx).Model(&model.Subject{})
	if departmentID > 0 {
		db = db.Where("department_id = ?", departmentID)
	}
	err := whereKeyContains(db, "name_key", query).
		Distinct().
		Pluck("name", &names).Error
	return names, err
}
