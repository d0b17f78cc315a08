package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"schedule-management/backend/config"
	"schedule-management/backend/internal/repository"
)

// LookupCache 字典数据缓存（Redis 实现，可为 nil 表示不缓存）
type LookupCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

// Service 所有 Service 的聚合入口
type Service struct {
	Department DepartmentService
	StudySpec  StudySpecService
	StudyGroup StudyGroupService
	Room       RoomService
	Subject    SubjectService
	Helper     HelperService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	cache LookupCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		Department: NewDepartmentService(repo, logger),
		StudySpec:  NewStudySpecService(repo, logger),
		StudyGroup: NewStudyGroupService(repo, logger),
		Room:       NewRoomService(repo, logger),
		Subject:    NewSubjectService(repo, logger),
		Helper:     NewHelperService(repo, cache, cfg.Cache.LookupTTL, logger),
		Export:     NewExportService(repo, logger),
	}
}
