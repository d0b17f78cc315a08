package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/model"
	"schedule-management/backend/internal/repository"
	pkgerrors "schedule-management/backend/pkg/errors"
)

// ── 教学班模块业务错误 ──

var (
	ErrStudyGroupExists         = fmt.Errorf("%w: 院系内教学班名称已存在", pkgerrors.ErrDuplicateEntity)
	ErrStudySpecNotInDepartment  = errors.New("专业方向不属于该院系")
)

// StudyGroupService 教学班业务接口
type StudyGroupService interface {
	Create(ctx context.Context, req *dto.CreateStudyGroupRequest) (*dto.StudyGroupResponse, error)
}

type studyGroupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudyGroupService 创建 StudyGroupService 实例
func NewStudyGroupService(repo *repository.Repository, logger *zap.Logger) StudyGroupService {
	return &studyGroupService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studyGroupService) Create(ctx context.Context, req *dto.CreateStudyGroupRequest) (*dto.StudyGroupResponse, error) {
	if err := ensureExists(ctx, s.repo.Lookup, model.KindDepartments, req.DepartmentID, ErrDepartmentNotFound); err != nil {
		return nil, err
	}

	spec, err := s.repo.StudySpec.GetByID(ctx, req.StudySpecializationID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStudySpecNotFound
		}
		s.logger.Error("查询专业方向失败", zap.Int64("id", req.StudySpecializationID), zap.Error(err))
		return nil, err
	}
	if spec.DepartmentID != req.DepartmentID {
		return nil, ErrStudySpecNotInDepartment
	}

	if err := ensureExists(ctx, s.repo.Lookup, model.KindSemesters, req.SemesterID, ErrSemesterNotFound); err != nil {
		return nil, err
	}

	group := &model.StudyGroup{
		Name:                  strings.TrimSpace(req.Name),
		DepartmentID:          req.DepartmentID,
		StudySpecializationID: req.StudySpecializationID,
		SemesterID:            req.SemesterID,
	}

	existing, err := s.repo.StudyGroup.FindByName(ctx, group.DepartmentID, group.Name)
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询教学班失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrStudyGroupExists
	}

	if err := s.repo.StudyGroup.Create(ctx, group); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrStudyGroupExists
		}
		s.logger.Error("创建教学班失败", zap.Error(err))
		return nil, err
	}

	return &dto.StudyGroupResponse{
		ID:                    group.ID,
		Name:                  group.Name,
		DepartmentID:          group.DepartmentID,
		StudySpecializationID: group.StudySpecializationID,
		SemesterID:            group.SemesterID,
	}, nil
}
