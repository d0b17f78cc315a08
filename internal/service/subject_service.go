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

// ── 课程模块业务错误 ──

var ErrSubjectExists = fmt.Errorf("%w: 院系内课程名称已存在", pkgerrors.ErrDuplicateEntity)

// SubjectService 课程业务接口
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	Search(ctx context.Context, req *dto.NameSearchRequest) (*dto.SearchQueryResponse, error)
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	if err := ensureExists(ctx, s.repo.Lookup, model.KindDepartments, req.DepartmentID, ErrDepartmentNotFound); err != nil {
		return nil, err
	}
	if err := ensureExists(ctx, s.repo.Lookup, model.KindSubjectTypes, req.SubjectTypeID, ErrSubjectTypeNotFound); err != nil {
		return nil, err
	}

	subject := &model.Subject{
		Name:          strings.TrimSpace(req.Name),
		Alias:         strings.TrimSpace(req.Alias),
		Description:   req.Description,
		SubjectTypeID: req.SubjectTypeID,
		DepartmentID:  req.DepartmentID,
	}

	existing, err := s.repo.Subject.FindByName(ctx, subject.DepartmentID, subject.Name)
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrSubjectExists
	}

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSubjectExists
		}
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return &dto.SubjectResponse{
		ID:            subject.ID,
		Name:          subject.Name,
		Alias:         subject.Alias,
		Description:   subject.Description,
		SubjectTypeID: subject.SubjectTypeID,
		DepartmentID:  subject.DepartmentID,
	}, nil
}

// ────────────────────── Search ──────────────────────

func (s *subjectService) Search(ctx context.Context, req *dto.NameSearchRequest) (*dto.SearchQueryResponse, error) {
	names, err := s.repo.Subject.SearchNames(ctx, normalizeQuery(req.Name), req.DepartmentID)
	if err != nil {
		s.logger.Error("检索课程名称失败", zap.Error(err))
		return nil, err
	}
	return &dto.SearchQueryResponse{Results: sortedNames(names)}, nil
}
