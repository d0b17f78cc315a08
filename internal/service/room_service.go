package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/model"
	"schedule-management/backend/internal/repository"
	pkgerrors "schedule-management/backend/pkg/errors"
)

// ── 教室模块业务错误 ──

var ErrRoomExists = fmt.Errorf("%w: 院系内教室名称已存在", pkgerrors.ErrDuplicateEntity)

// RoomService 教室业务接口
type RoomService interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	Search(ctx context.Context, req *dto.NameSearchRequest) (*dto.SearchQueryResponse, error)
}

type roomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoomService 创建 RoomService 实例
func NewRoomService(repo *repository.Repository, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *roomService) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if err := ensureExists(ctx, s.repo.Lookup, model.KindDepartments, req.DepartmentID, ErrDepartmentNotFound); err != nil {
		return nil, err
	}
	if err := ensureExists(ctx, s.repo.Lookup, model.KindRoomTypes, req.RoomTypeID, ErrRoomTypeNotFound); err != nil {
		return nil, err
	}

	room := &model.Room{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Capacity:     req.Capacity,
		RoomTypeID:   req.RoomTypeID,
		DepartmentID: req.DepartmentID,
	}

	existing, err := s.repo.Room.FindByName(ctx, room.DepartmentID, room.Name)
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询教室失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoomExists
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrRoomExists
		}
		s.logger.Error("创建教室失败", zap.Error(err))
		return nil, err
	}

	return &dto.RoomResponse{
		ID:           room.ID,
		Name:         room.Name,
		Description:  room.Description,
		Capacity:     room.Capacity,
		RoomTypeID:   room.RoomTypeID,
		DepartmentID: room.DepartmentID,
	}, nil
}

// ────────────────────── Search ──────────────────────

func (s *roomService) Search(ctx context.Context, req *dto.NameSearchRequest) (*dto.SearchQueryResponse, error) {
	names, err := s.repo.Room.SearchNames(ctx, normalizeQuery(req.Name), req.DepartmentID)
	if err != nil {
		s.logger.Error("检索教室名称失败", zap.Error(err))
		return nil, err
	}
	return &dto.SearchQueryResponse{Results: sortedNames(names)}, nil
}
