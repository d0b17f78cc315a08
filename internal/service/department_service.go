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

// ── 院系模块业务错误 ──

var (
	// ErrDepartmentExists 名称或别名与已有院系冲突（大小写不敏感）
	ErrDepartmentExists = fmt.Errorf("%w: 院系名称或别名已存在", pkgerrors.ErrDuplicateEntity)
)

// DepartmentService 院系业务接口
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	// GetAllDepartmentsList 按名称子串检索院系名称，空检索词返回全部，结果升序
	GetAllDepartmentsList(ctx context.Context, query string) (*dto.SearchQueryResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DepartmentDetailResponse, error)
	List(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentDetailResponse, int64, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept := newDepartment(req)

	// 名称与别名任一冲突即拒绝
	existing, err := s.repo.Department.FindByNameOrAlias(ctx, dept.Name, dept.Alias)
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询院系失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrDepartmentExists
	}

	if err := s.repo.Department.Create(ctx, dept); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDepartmentExists
		}
		s.logger.Error("创建院系失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("院系已创建", zap.Int64("id", dept.ID), zap.String("name", dept.Name))
	return &dto.DepartmentResponse{ID: dept.ID, Name: dept.Name, Alias: dept.Alias}, nil
}

// newDepartment 请求字段逐一映射为实体，ID 由数据库分配
func newDepartment(req *dto.CreateDepartmentRequest) *model.Department {
	return &model.Department{
		Name:  strings.TrimSpace(req.Name),
		Alias: strings.TrimSpace(req.Alias),
	}
}

// ────────────────────── Search ──────────────────────

func (s *departmentService) GetAllDepartmentsList(ctx context.Context, query string) (*dto.SearchQueryResponse, error) {
	names, err := s.repo.Department.SearchNames(ctx, normalizeQuery(query))
	if err != nil {
		s.logger.Error("检索院系名称失败", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return &dto.SearchQueryResponse{Results: sortedNames(names)}, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *departmentService) GetByID(ctx context.Context, id int64) (*dto.DepartmentDetailResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("查询院系失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Department.BatchCountStudySpecs(ctx, []int64{dept.ID})
	if err != nil {
		s.logger.Warn("查询专业方向数失败，回退为0", zap.Error(err))
		counts = map[int64]int64{}
	}

	resp := toDepartmentDetailResponse(dept, counts[dept.ID])
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *departmentService) List(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentDetailResponse, int64, error) {
	depts, total, err := s.repo.Department.ListPage(ctx, normalizeQuery(req.Name), req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("分页查询院系失败", zap.Error(err))
		return nil, 0, err
	}

	// 批量查询专业方向数，避免 N+1 查询问题
	ids := make([]int64, 0, len(depts))
	for _, d := range depts {
		ids = append(ids, d.ID)
	}
	counts, err := s.repo.Department.BatchCountStudySpecs(ctx, ids)
	if err != nil {
		s.logger.Warn("批量查询专业方向数失败，回退为0", zap.Error(err))
		counts = map[int64]int64{}
	}

	result := make([]dto.DepartmentDetailResponse, 0, len(depts))
	for i := range depts {
		result = append(result, toDepartmentDetailResponse(&depts[i], counts[depts[i].ID]))
	}
	return result, total, nil
}

// ── 内部辅助 ──

func toDepartmentDetailResponse(d *model.Department, specCount int64) dto.DepartmentDetailResponse {
	return dto.DepartmentDetailResponse{
		ID:             d.ID,
		Name:           d.Name,
		Alias:          d.Alias,
		StudySpecCount: specCount,
		CreatedAt:      d.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      d.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
