package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Department DepartmentRepository
	StudySpec  StudySpecRepository
	StudyGroup StudyGroupRepository
	Room       RoomRepository
	Subject    SubjectRepository
	Lookup     LookupRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Department: NewDepartmentRepo(db),
		StudySpec:  NewStudySpecRepo(db),
		StudyGroup: NewStudyGroupRepo(db),
		Room:       NewRoomRepo(db),
		Subject:    NewSubjectRepo(db),
		Lookup:     NewLookupRepo(db),
		db:         db,
	}
}

// Ping 数据库健康检查
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
