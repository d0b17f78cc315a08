package repository

import (
	"context"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
)

// StudyGroupRepository 教学班数据访问接口
type StudyGroupRepository interface {
	Create(ctx context.Context, group *model.StudyGroup) error
	FindByName(ctx context.Context, departmentID int64, name string) (*model.StudyGroup, error)
	// ListSemesters 返回指定院系 + 专业方向下存在教学班的学期（去重，按序号升序）
	ListSemesters(ctx context.Context, departmentID, studySpecID int64) ([]model.Semester, error)
}

type studyGroupRepo struct {
	db *gorm.DB
}

// NewStudyGroupRepo 创建 StudyGroupRepository 实例
func NewStudyGroupRepo(db *gorm.DB) StudyGroupRepository {
	return &studyGroupRepo{db: db}
}

func (r *studyGroupRepo) Create(ctx context.Context, group *model.StudyGroup) error {
	return r.db.WithContext(ctx).Omit("Semester").Create(group).Error
}

func (r *studyGroupRepo) FindByName(ctx context.Context, departmentID int64, name string) (*model.StudyGroup, error) {
	var group model.StudyGroup
	err := whereKeyEquals(r.db.WithContext(ctx).Where("department_id = ?", departmentID), "name_key", name).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *studyGroupRepo) ListSemesters(ctx context.Context, departmentID, studySpecID int64) ([]model.Semester, error) {
	semesters := make([]model.Semester, 0)
	sub := r.db.Model(&model.StudyGroup{}).
		Select("semester_id").
		Where("department_id = ? AND study_specialization_id = ?", departmentID, studySpecID)
	err := r.db.WithContext(ctx).
		Where("id IN (?)", sub).
		Order("number ASC").
		Find(&semesters).Error
	return semesters, err
}
