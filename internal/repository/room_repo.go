package repository

import (
	"context"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
)

// RoomRepository 教室数据访问接口
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByName(ctx context.Context, departmentID int64, name string) (*model.Room, error)
	SearchNames(ctx context.Context, query string, departmentID int64) ([]string, error)
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo 创建 RoomRepository 实例
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) FindByName(ctx context.Context, departmentID int64, name string) (*model.Room, error) {
	var room model.Room
	err := whereKeyEquals(r.db.WithContext(ctx).Where("department_id = ?", departmentID), "name_key", name).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) SearchNames(ctx context.Context, query string, departmentID int64) ([]string, error) {
	names := make([]string, 0)
	db := r.db.WithContext(ctx).Model(&model.Room{})
	if departmentID > 0 {
		db = db.Where("department_id = ?", departmentID)
	}
	err := whereKeyContains(db, "name_key", query).
		Distinct().
		Pluck("name", &names).Error
	return names, err
}
