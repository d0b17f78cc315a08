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

// ── 专业方向模块业务错误 ──

var (
	ErrStudySpecExists   = fmt.Errorf("%w: 同院系同学习形式同学位层次下专业方向名称或别名已存在", pkgerrors.ErrDuplicateEntity)
	ErrStudySpecNotFound = fmt.Errorf("%w: 专业方向不存在", pkgerrors.ErrNotFound)
)

// StudySpecService 专业方向业务接口
type StudySpecService interface {
	Create(ctx context.Context, req *dto.CreateStudySpecRequest) (*dto.StudySpecResponse, error)
	Search(ctx context.Context, req *dto.StudySpecSearchRequest) (*dto.SearchQueryResponse, error)
}

type studySpecService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudySpecService 创建 StudySpecService 实例
func NewStudySpecService(repo *repository.Repository, logger *zap.Logger) StudySpecService {
	return &studySpecService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studySpecService) Create(ctx context.Context, req *dto.CreateStudySpecRequest) (*dto.StudySpecResponse, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	spec := &model.StudySpecialization{
		Name:          strings.TrimSpace(req.Name),
		Alias:         strings.TrimSpace(req.Alias),
		DepartmentID:  req.DepartmentID,
		StudyTypeID:   req.StudyTypeID,
		StudyDegreeID: req.StudyDegreeID,
	}

	existing, err := s.repo.StudySpec.FindDuplicate(ctx, spec)
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询专业方向失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrStudySpecExists
	}

	if err := s.repo.StudySpec.Create(ctx, spec); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrStudySpecExists
		}
		s.logger.Error("创建专业方向失败", zap.Error(err))
		return nil, err
	}

	return &dto.StudySpecResponse{
		ID:            spec.ID,
		Name:          spec.Name,
		Alias:         spec.Alias,
		DepartmentID:  spec.DepartmentID,
		StudyTypeID:   spec.StudyTypeID,
		StudyDegreeID: spec.StudyDegreeID,
	}, nil
}

// checkReferences 校验院系、学习形式、学位层次均存在
func (s *studySpecService) checkReferences(ctx context.Context, req *dto.CreateStudySpecRequest) error {
	refs := []struct {
		kind     model.EntityKind
		id       int64
		notFound error
	}{
		{model.KindDepartments, req.DepartmentID, ErrDepartmentNotFound},
		{model.KindStudyTypes, req.StudyTypeID, ErrStudyTypeNotFound},
		{model.KindStudyDegrees, req.StudyDegreeID, ErrStudyDegreeNotFound},
	}
	for _, ref := range refs {
		if err := ensureExists(ctx, s.repo.Lookup, ref.kind, ref.id, ref.notFound); err != nil {
			if !isDomainNotFound(err) {
				s.logger.Error("校验专业方向引用失败", zap.String("kind", string(ref.kind)), zap.Error(err))
			}
			return err
		}
	}
	return nil
}

// ────────────────────── Search ──────────────────────

func (s *studySpecService) Search(ctx context.Context, req *dto.StudySpecSearchRequest) (*dto.SearchQueryResponse, error) {
	names, err := s.repo.StudySpec.SearchNames(ctx, normalizeQuery(req.Name), req.DepartmentID)
	if err != nil {
		s.logger.Error("检索专业方向名称失败", zap.Error(err))
		return nil, err
	}
	return &dto.SearchQueryResponse{Results: sortedNames(names)}, nil
}
