package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/model"
	"schedule-management/backend/internal/repository"
	pkgerrors "schedule-management/backend/pkg/errors"
)

// ── 辅助查询模块业务错误 ──

var (
	ErrUnknownConversionType = fmt.Errorf("%w: 不支持的转换类型", pkgerrors.ErrConversionFailure)
	ErrInvalidStudySpecType  = errors.New("学习形式筛选值只能是 ALL、ST 或 NS/Z")
)

// paginationTypes 前端可选的每页条数
var paginationTypes = []int{5, 10, 15, 20, 30, 50}

// 字典缓存键
const (
	cacheKeyStudyTypes   = "study-types"
	cacheKeyStudyDegrees = "study-degrees"
	cacheKeySemesters    = "semesters"
	cacheKeyRoomTypes    = "room-types"
	cacheKeyRoles        = "roles"
)

// HelperService 下拉框字典与名称/ID 互转接口
type HelperService interface {
	GetAvailablePaginationTypes() []int
	GetAvailableStudyTypes(ctx context.Context) (*dto.AvailableDataResponse[dto.NameIDElement], error)
	GetAvailableStudyDegreeTypes(ctx context.Context) (*dto.AvailableDataResponse[dto.NameIDElement], error)
	GetAvailableSemesters(ctx context.Context) (*dto.AvailableDataResponse[dto.NameIDElement], error)
	// GetAvailableStudyDegreeBaseAllSpecs 某院系下的专业方向，按展示名升序
	GetAvailableStudyDegreeBaseAllSpecs(ctx context.Context, departmentID int64, specType model.StudySpecType) ([]dto.NameIDElement, error)
	// GetAvailableSemBaseStudyGroups 某院系某专业方向下已开设教学班的学期
	GetAvailableSemBaseStudyGroups(ctx context.Context, departmentID, studySpecID int64) ([]dto.NameIDElement, error)
	// ConvertNamesToIds 名称批量转 ID，任一名称无法解析即整体失败
	ConvertNamesToIds(ctx context.Context, req *dto.ConvertNamesToIdsRequest) (*dto.ConvertToNameWithIdResponse, error)
	// ConvertIdsToNames ID 批量转名称，任一 ID 无法解析即整体失败
	ConvertIdsToNames(ctx context.Context, req *dto.ConvertIdsToNamesRequest) (*dto.ConvertToNameWithIdResponse, error)
	GetAvailableSubjectTypes(ctx context.Context, name string) (*dto.AvailableDataResponse[string], error)
	GetAvailableRoomTypes(ctx context.Context) (*dto.AvailableDataResponse[string], error)
	GetAvailableRoles(ctx context.Context) (*dto.AvailableDataResponse[string], error)
}

type helperService struct {
	repo   *repository.Repository
	cache  LookupCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewHelperService 创建 HelperService 实例，cache 为 nil 时直接查库
func NewHelperService(repo *repository.Repository, cache LookupCache, ttl time.Duration, logger *zap.Logger) HelperService {
	return &helperService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// cached 先读缓存，未命中再加载并回写；缓存故障只记录告警
func cached[T any](ctx context.Context, s *helperService, key string, load func() (T, error)) (T, error) {
	if s.cache != nil {
		var v T
		hit, err := s.cache.GetJSON(ctx, key, &v)
		if err != nil {
			s.logger.Warn("读取字典缓存失败", zap.String("key", key), zap.Error(err))
		} else if hit {
			return v, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, v, s.ttl); err != nil {
			s.logger.Warn("写入字典缓存失败", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}

// ────────────────────── 字典 ──────────────────────

func (s *helperService) GetAvailablePaginationTypes() []int {
	out := make([]int, len(paginationTypes))
	copy(out, paginationTypes)
	return out
}

func (s *helperService) GetAvailableStudyTypes(ctx context.Context) (*dto.AvailableDataResponse[dto.NameIDElement], error) {
	return cached(ctx, s, cacheKeyStudyTypes, func() (*dto.AvailableDataResponse[dto.NameIDElement], error) {
		types, err := s.repo.Lookup.ListStudyTypes(ctx)
		if err != nil {
			s.logger.Error("查询学习形式失败", zap.Error(err))
			return nil, err
		}
		elems := make([]dto.NameIDElement, 0, len(types))
		for _, t := range types {
			elems = append(elems, dto.NameIDElement{Name: aliasedName(t.Name, t.Alias), ID: t.ID})
		}
		return &dto.AvailableDataResponse[dto.NameIDElement]{DataElements: elems}, nil
	})
}

func (s *helperService) GetAvailableStudyDegreeTypes(ctx context.Context) (*dto.AvailableDataResponse[dto.NameIDElement], error) {
	return cached(ctx, s, cacheKeyStudyDegrees, func() (*dto.AvailableDataResponse[dto.NameIDElement], error) {
		degrees, err := s.repo.Lookup.ListStudyDegrees(ctx)
		if err != nil {
			s.logger.Error("查询学位层次失败", zap.Error(err))
			return nil, err
		}
		elems := make([]dto.NameIDElement, 0, len(degrees))
		for _, d := range degrees {
			elems = append(elems, dto.NameIDElement{Name: aliasedName(d.Name, d.Alias), ID: d.ID})
		}
		return &dto.AvailableDataResponse[dto.NameIDElement]{DataElements: elems}, nil
	})
}

func (s *helperService) GetAvailableSemesters(ctx context.Context) (*dto.AvailableDataResponse[dto.NameIDElement], error) {
	return cached(ctx, s, cacheKeySemesters, func() (*dto.AvailableDataResponse[dto.NameIDElement], error) {
		semesters, err := s.repo.Lookup.ListSemesters(ctx)
		if err != nil {
			s.logger.Error("查询学期失败", zap.Error(err))
			return nil, err
		}
		return &dto.AvailableDataResponse[dto.NameIDElement]{DataElements: semesterElements(semesters)}, nil
	})
}

func (s *helperService) GetAvailableSubjectTypes(ctx context.Context, name string) (*dto.AvailableDataResponse[string], error) {
	types, err := s.repo.Lookup.ListSubjectTypes(ctx, normalizeQuery(name))
	if err != nil {
		s.logger.Error("查询课程类型失败", zap.Error(err))
		return nil, err
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	return &dto.AvailableDataResponse[string]{DataElements: names}, nil
}

func (s *helperService) GetAvailableRoomTypes(ctx context.Context) (*dto.AvailableDataResponse[string], error) {
	return cached(ctx, s, cacheKeyRoomTypes, func() (*dto.AvailableDataResponse[string], error) {
		types, err := s.repo.Lookup.ListRoomTypes(ctx)
		if err != nil {
			s.logger.Error("查询教室类型失败", zap.Error(err))
			return nil, err
		}
		names := make([]string, 0, len(types))
		for _, t := range types {
			names = append(names, t.Name)
		}
		return &dto.AvailableDataResponse[string]{DataElements: names}, nil
	})
}

func (s *helperService) GetAvailableRoles(ctx context.Context) (*dto.AvailableDataResponse[string], error) {
	return cached(ctx, s, cacheKeyRoles, func() (*dto.AvailableDataResponse[string], error) {
		roles, err := s.repo.Lookup.ListRoles(ctx)
		if err != nil {
			s.logger.Error("查询角色失败", zap.Error(err))
			return nil, err
		}
		names := make([]string, 0, len(roles))
		for _, r := range roles {
			names = append(names, r.Name)
		}
		return &dto.AvailableDataResponse[string]{DataElements: names}, nil
	})
}

// ────────────────────── 范围下拉 ──────────────────────

func (s *helperService) GetAvailableStudyDegreeBaseAllSpecs(ctx context.Context, departmentID int64, specType model.StudySpecType) ([]dto.NameIDElement, error) {
	if err := ensureExists(ctx, s.repo.Lookup, model.KindDepartments, departmentID, ErrDepartmentNotFound); err != nil {
		return nil, err
	}

	specs, err := s.repo.StudySpec.ListByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("查询院系专业方向失败", zap.Int64("department_id", departmentID), zap.Error(err))
		return nil, err
	}

	elems := make([]dto.NameIDElement, 0, len(specs))
	for i := range specs {
		alias := ""
		if specs[i].StudyType != nil {
			alias = specs[i].StudyType.Alias
		}
		if !specType.Matches(alias) {
			continue
		}
		elems = append(elems, dto.NameIDElement{Name: specs[i].DisplayName(), ID: specs[i].ID})
	}
	sort.SliceStable(elems, func(i, j int) bool { return elems[i].Name < elems[j].Name })
	return elems, nil
}

func (s *helperService) GetAvailableSemBaseStudyGroups(ctx context.Context, departmentID, studySpecID int64) ([]dto.NameIDElement, error) {
	if err := ensureExists(ctx, s.repo.Lookup, model.KindDepartments, departmentID, ErrDepartmentNotFound); err != nil {
		return nil, err
	}

	spec, err := s.repo.StudySpec.GetByID(ctx, studySpecID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStudySpecNotFound
		}
		s.logger.Error("查询专业方向失败", zap.Int64("id", studySpecID), zap.Error(err))
		return nil, err
	}
	// 不属于该院系的专业方向按不存在处理
	if spec.DepartmentID != departmentID {
		return nil, ErrStudySpecNotFound
	}

	semesters, err := s.repo.StudyGroup.ListSemesters(ctx, departmentID, studySpecID)
	if err != nil {
		s.logger.Error("查询教学班学期失败", zap.Error(err))
		return nil, err
	}
	return semesterElements(semesters), nil
}

// ────────────────────── 名称 / ID 互转 ──────────────────────

func (s *helperService) ConvertNamesToIds(ctx context.Context, req *dto.ConvertNamesToIdsRequest) (*dto.ConvertToNameWithIdResponse, error) {
	kind, ok := model.ParseEntityKind(req.Type)
	if !ok {
		return nil, ErrUnknownConversionType
	}

	// 名称精确匹配，保证 ids → names 能还原输入
	rows, err := s.repo.Lookup.FindByNames(ctx, kind, req.Names)
	if err != nil {
		s.logger.Error("按名称批量查询失败", zap.String("type", req.Type), zap.Error(err))
		return nil, err
	}

	// rows 按 ID 升序，重名时保留最小 ID
	byName := make(map[string]int64, len(rows))
	for _, row := range rows {
		if _, seen := byName[row.Name]; !seen {
			byName[row.Name] = row.ID
		}
	}

	results := make([]dto.NameIDElement, 0, len(req.Names))
	for _, name := range req.Names {
		id, ok := byName[name]
		if !ok {
			return nil, &pkgerrors.ConversionError{Type: req.Type, Name: name}
		}
		results = append(results, dto.NameIDElement{Name: name, ID: id})
	}
	return &dto.ConvertToNameWithIdResponse{Results: results}, nil
}

func (s *helperService) ConvertIdsToNames(ctx context.Context, req *dto.ConvertIdsToNamesRequest) (*dto.ConvertToNameWithIdResponse, error) {
	kind, ok := model.ParseEntityKind(req.Type)
	if !ok {
		return nil, ErrUnknownConversionType
	}

	rows, err := s.repo.Lookup.FindByIDs(ctx, kind, req.IDs)
	if err != nil {
		s.logger.Error("按 ID 批量查询失败", zap.String("type", req.Type), zap.Error(err))
		return nil, err
	}

	byID := make(map[int64]string, len(rows))
	for _, row := range rows {
		byID[row.ID] = row.Name
	}

	results := make([]dto.NameIDElement, 0, len(req.IDs))
	for _, id := range req.IDs {
		name, ok := byID[id]
		if !ok {
			return nil, &pkgerrors.ConversionError{Type: req.Type, ID: id}
		}
		results = append(results, dto.NameIDElement{Name: name, ID: id})
	}
	return &dto.ConvertToNameWithIdResponse{Results: results}, nil
}

// ── 内部辅助 ──

// aliasedName 字典展示名，例如 "Full-time (ST)"
func aliasedName(name, alias string) string {
	return fmt.Sprintf("%s (%s)", name, alias)
}

func semesterElements(semesters []model.Semester) []dto.NameIDElement {
	elems := make([]dto.NameIDElement, 0, len(semesters))
	for _, sem := range semesters {
		elems = append(elems, dto.NameIDElement{Name: sem.Name, ID: sem.ID})
	}
	return elems
}
