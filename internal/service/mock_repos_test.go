package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
	"schedule-management/backend/internal/repository"
)

// ── 内存数据集 ──
//
// 各 mock repo 共享同一个 mockStore，使跨表的存在性校验与数据库行为一致

type mockStore struct {
	nextID int64

	departments map[int64]*model.Department
	specs       map[int64]*model.StudySpecialization
	groups      map[int64]*model.StudyGroup
	rooms       map[int64]*model.Room
	subjects    map[int64]*model.Subject

	studyTypes   []model.StudyType
	studyDegrees []model.StudyDegree
	semesters    []model.Semester
	roomTypes    []model.RoomType
	subjectTypes []model.SubjectType
	roles        []model.Role

	// createErr 非 nil 时所有 Create 返回该错误（模拟唯一索引竞态）
	createErr error
	// lookupCalls 字典查询次数，用于验证缓存命中
	lookupCalls int
}

func newMockStore() *mockStore {
	return &mockStore{
		nextID:      100,
		departments: make(map[int64]*model.Department),
		specs:       make(map[int64]*model.StudySpecialization),
		groups:      make(map[int64]*model.StudyGroup),
		rooms:       make(map[int64]*model.Room),
		subjects:    make(map[int64]*model.Subject),
		studyTypes: []model.StudyType{
			{ID: 1, Name: "Full-time", Alias: "ST"},
			{ID: 2, Name: "Part-time", Alias: "NS/Z"},
		},
		studyDegrees: []model.StudyDegree{
			{ID: 1, Name: "First-cycle", Alias: "I"},
			{ID: 2, Name: "Second-cycle", Alias: "II"},
		},
		semesters: []model.Semester{
			{ID: 3, Name: "III", Number: 3},
			{ID: 1, Name: "I", Number: 1},
			{ID: 2, Name: "II", Number: 2},
		},
		roomTypes: []model.RoomType{
			{ID: 1, Name: "Lecture hall", Alias: "W"},
			{ID: 2, Name: "Laboratory", Alias: "L"},
		},
		subjectTypes: []model.SubjectType{
			{ID: 1, Name: "Lecture", Alias: "W"},
			{ID: 2, Name: "Laboratory", Alias: "L"},
			{ID: 3, Name: "Seminar", Alias: "S"},
		},
		roles: []model.Role{
			{ID: 1, Name: "administrator"},
			{ID: 2, Name: "teacher"},
		},
	}
}

func (s *mockStore) newID() int64 {
	s.nextID++
	return s.nextID
}

// addDepartment 直接写入院系（绕过 Service），返回分配的 ID
func (s *mockStore) addDepartment(name, alias string) int64 {
	id := s.newID()
	s.departments[id] = &model.Department{ID: id, Name: name, Alias: alias}
	return id
}

func (s *mockStore) addStudySpec(deptID, typeID, degreeID int64, name, alias string) int64 {
	id := s.newID()
	s.specs[id] = &model.StudySpecialization{
		ID: id, Name: name, Alias: alias,
		DepartmentID: deptID, StudyTypeID: typeID, StudyDegreeID: degreeID,
	}
	return id
}

func (s *mockStore) addStudyGroup(deptID, specID, semesterID int64, name string) int64 {
	id := s.newID()
	s.groups[id] = &model.StudyGroup{
		ID: id, Name: name,
		DepartmentID: deptID, StudySpecializationID: specID, SemesterID: semesterID,
	}
	return id
}

// newMockRepository 组装使用同一 mockStore 的 Repository 聚合
func newMockRepository() (*repository.Repository, *mockStore) {
	store := newMockStore()
	return &repository.Repository{
		Department: &mockDeptRepo{store},
		StudySpec:  &mockStudySpecRepo{store},
		StudyGroup: &mockStudyGroupRepo{store},
		Room:       &mockRoomRepo{store},
		Subject:    &mockSubjectRepo{store},
		Lookup:     &mockLookupRepo{store},
	}, store
}

func containsFold(name, query string) bool {
	return query == "" || strings.Contains(model.FoldKey(name), model.FoldKey(query))
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct{ s *mockStore }

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	if m.s.createErr != nil {
		return m.s.createErr
	}
	dept.ID = m.s.newID()
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt
	m.s.departments[dept.ID] = dept
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id int64) (*model.Department, error) {
	if d, ok := m.s.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) FindByNameOrAlias(_ context.Context, name, alias string) (*model.Department, error) {
	for _, id := range sortedKeys(m.s.departments) {
		d := m.s.departments[id]
		if strings.EqualFold(d.Name, name) || strings.EqualFold(d.Alias, alias) {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) SearchNames(_ context.Context, query string) ([]string, error) {
	// 故意以 map 顺序返回，排序由 Service 负责
	names := make([]string, 0)
	for _, d := range m.s.departments {
		if containsFold(d.Name, query) {
			names = append(names, d.Name)
		}
	}
	return names, nil
}

func (m *mockDeptRepo) ListPage(_ context.Context, query string, offset, limit int) ([]model.Department, int64, error) {
	var matched []model.Department
	for _, d := range m.s.departments {
		if containsFold(d.Name, query) {
			matched = append(matched, *d)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	total := int64(len(matched))
	if offset >= len(matched) {
		return []model.Department{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockDeptRepo) ListWithStudySpecs(ctx context.Context) ([]model.Department, error) {
	specRepo := &mockStudySpecRepo{m.s}
	var result []model.Department
	for _, d := range m.s.departments {
		dept := *d
		dept.StudySpecializations, _ = specRepo.ListByDepartment(ctx, d.ID)
		result = append(result, dept)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockDeptRepo) BatchCountStudySpecs(_ context.Context, ids []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ids))
	for _, id := range ids {
		for _, spec := range m.s.specs {
			if spec.DepartmentID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

// ── Mock StudySpecRepository ──

type mockStudySpecRepo struct{ s *mockStore }

func (m *mockStudySpecRepo) Create(_ context.Context, spec *model.StudySpecialization) error {
	if m.s.createErr != nil {
		return m.s.createErr
	}
	spec.ID = m.s.newID()
	m.s.specs[spec.ID] = spec
	return nil
}

func (m *mockStudySpecRepo) GetByID(_ context.Context, id int64) (*model.StudySpecialization, error) {
	if spec, ok := m.s.specs[id]; ok {
		return spec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudySpecRepo) FindDuplicate(_ context.Context, spec *model.StudySpecialization) (*model.StudySpecialization, error) {
	for _, id := range sortedKeys(m.s.specs) {
		e := m.s.specs[id]
		if e.DepartmentID != spec.DepartmentID || e.StudyTypeID != spec.StudyTypeID || e.StudyDegreeID != spec.StudyDegreeID {
			continue
		}
		if strings.EqualFold(e.Name, spec.Name) || strings.EqualFold(e.Alias, spec.Alias) {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudySpecRepo) SearchNames(_ context.Context, query string, deptID int64) ([]string, error) {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, spec := range m.s.specs {
		if deptID > 0 && spec.DepartmentID != deptID {
			continue
		}
		if containsFold(spec.Name, query) && !seen[spec.Name] {
			seen[spec.Name] = true
			names = append(names, spec.Name)
		}
	}
	return names, nil
}

func (m *mockStudySpecRepo) ListByDepartment(_ context.Context, deptID int64) ([]model.StudySpecialization, error) {
	var result []model.StudySpecialization
	for _, id := range sortedKeys(m.s.specs) {
		spec := *m.s.specs[id]
		if spec.DepartmentID != deptID {
			continue
		}
		for i := range m.s.studyTypes {
			if m.s.studyTypes[i].ID == spec.StudyTypeID {
				spec.StudyType = &m.s.studyTypes[i]
			}
		}
		for i := range m.s.studyDegrees {
			if m.s.studyDegrees[i].ID == spec.StudyDegreeID {
				spec.StudyDegree = &m.s.studyDegrees[i]
			}
		}
		result = append(result, spec)
	}
	return result, nil
}

// ── Mock StudyGroupRepository ──

type mockStudyGroupRepo struct{ s *mockStore }

func (m *mockStudyGroupRepo) Create(_ context.Context, group *model.StudyGroup) error {
	if m.s.createErr != nil {
		return m.s.createErr
	}
	group.ID = m.s.newID()
	m.s.groups[group.ID] = group
	return nil
}

func (m *mockStudyGroupRepo) FindByName(_ context.Context, deptID int64, name string) (*model.StudyGroup, error) {
	for _, g := range m.s.groups {
		if g.DepartmentID == deptID && strings.EqualFold(g.Name, name) {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudyGroupRepo) ListSemesters(_ context.Context, deptID, specID int64) ([]model.Semester, error) {
	used := make(map[int64]bool)
	for _, g := range m.s.groups {
		if g.DepartmentID == deptID && g.StudySpecializationID == specID {
			used[g.SemesterID] = true
		}
	}
	var result []model.Semester
	for _, sem := range m.s.semesters {
		if used[sem.ID] {
			result = append(result, sem)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct{ s *mockStore }

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if m.s.createErr != nil {
		return m.s.createErr
	}
	room.ID = m.s.newID()
	m.s.rooms[room.ID] = room
	return nil
}

func (m *mockRoomRepo) FindByName(_ context.Context, deptID int64, name string) (*model.Room, error) {
	for _, r := range m.s.rooms {
		if r.DepartmentID == deptID && strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) SearchNames(_ context.Context, query string, deptID int64) ([]string, error) {
	names := make([]string, 0)
	for _, r := range m.s.rooms {
		if (deptID == 0 || r.DepartmentID == deptID) && containsFold(r.Name, query) {
			names = append(names, r.Name)
		}
	}
	return names, nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct{ s *mockStore }

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if m.s.createErr != nil {
		return m.s.createErr
	}
	subject.ID = m.s.newID()
	m.s.subjects[subject.ID] = subject
	return nil
}

func (m *mockSubjectRepo) FindByName(_ context.Context, deptID int64, name string) (*model.Subject, error) {
	for _, sub := range m.s.subjects {
		if sub.DepartmentID == deptID && strings.EqualFold(sub.Name, name) {
			return sub, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) SearchNames(_ context.Context, query string, deptID int64) ([]string, error) {
	names := make([]string, 0)
	for _, sub := range m.s.subjects {
		if (deptID == 0 || sub.DepartmentID == deptID) && containsFold(sub.Name, query) {
			names = append(names, sub.Name)
		}
	}
	return names, nil
}

// ── Mock LookupRepository ──

type mockLookupRepo struct{ s *mockStore }

func (m *mockLookupRepo) ListStudyTypes(_ context.Context) ([]model.StudyType, error) {
	m.s.lookupCalls++
	return append([]model.StudyType(nil), m.s.studyTypes...), nil
}

func (m *mockLookupRepo) ListStudyDegrees(_ context.Context) ([]model.StudyDegree, error) {
	m.s.lookupCalls++
	return append([]model.StudyDegree(nil), m.s.studyDegrees...), nil
}

func (m *mockLookupRepo) ListSemesters(_ context.Context) ([]model.Semester, error) {
	m.s.lookupCalls++
	result := append([]model.Semester(nil), m.s.semesters...)
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func (m *mockLookupRepo) ListRoomTypes(_ context.Context) ([]model.RoomType, error) {
	m.s.lookupCalls++
	return append([]model.RoomType(nil), m.s.roomTypes...), nil
}

func (m *mockLookupRepo) ListSubjectTypes(_ context.Context, query string) ([]model.SubjectType, error) {
	m.s.lookupCalls++
	var result []model.SubjectType
	for _, t := range m.s.subjectTypes {
		if containsFold(t.Name, query) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *mockLookupRepo) ListRoles(_ context.Context) ([]model.Role, error) {
	m.s.lookupCalls++
	return append([]model.Role(nil), m.s.roles...), nil
}

// rows 按 ID 升序返回指定类型的全部 (id, name)
func (m *mockLookupRepo) rows(kind model.EntityKind) ([]model.NamedRow, error) {
	var rows []model.NamedRow
	switch kind {
	case model.KindDepartments:
		for _, id := range sortedKeys(m.s.departments) {
			rows = append(rows, model.NamedRow{ID: id, Name: m.s.departments[id].Name})
		}
	case model.KindStudySpecializations:
		for _, id := range sortedKeys(m.s.specs) {
			rows = append(rows, model.NamedRow{ID: id, Name: m.s.specs[id].Name})
		}
	case model.KindStudyGroups:
		for _, id := range sortedKeys(m.s.groups) {
			rows = append(rows, model.NamedRow{ID: id, Name: m.s.groups[id].Name})
		}
	case model.KindRooms:
		for _, id := range sortedKeys(m.s.rooms) {
			rows = append(rows, model.NamedRow{ID: id, Name: m.s.rooms[id].Name})
		}
	case model.KindSubjects:
		for _, id := range sortedKeys(m.s.subjects) {
			rows = append(rows, model.NamedRow{ID: id, Name: m.s.subjects[id].Name})
		}
	case model.KindStudyTypes:
		for _, t := range m.s.studyTypes {
			rows = append(rows, model.NamedRow{ID: t.ID, Name: t.Name})
		}
	case model.KindStudyDegrees:
		for _, d := range m.s.studyDegrees {
			rows = append(rows, model.NamedRow{ID: d.ID, Name: d.Name})
		}
	case model.KindSemesters:
		for _, sem := range m.s.semesters {
			rows = append(rows, model.NamedRow{ID: sem.ID, Name: sem.Name})
		}
	case model.KindRoomTypes:
		for _, t := range m.s.roomTypes {
			rows = append(rows, model.NamedRow{ID: t.ID, Name: t.Name})
		}
	case model.KindSubjectTypes:
		for _, t := range m.s.subjectTypes {
			rows = append(rows, model.NamedRow{ID: t.ID, Name: t.Name})
		}
	default:
		return nil, fmt.Errorf("未知实体类型 %q", kind)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (m *mockLookupRepo) Exists(_ context.Context, kind model.EntityKind, id int64) (bool, error) {
	rows, err := m.rows(kind)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLookupRepo) FindByNames(_ context.Context, kind model.EntityKind, names []string) ([]model.NamedRow, error) {
	rows, err := m.rows(kind)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var result []model.NamedRow
	for _, row := range rows {
		if wanted[row.Name] {
			result = append(result, row)
		}
	}
	return result, nil
}

func (m *mockLookupRepo) FindByIDs(_ context.Context, kind model.EntityKind, ids []int64) ([]model.NamedRow, error) {
	rows, err := m.rows(kind)
	if err != nil {
		return nil, err
	}
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var result []model.NamedRow
	for _, row := range rows {
		if wanted[row.ID] {
			result = append(result, row)
		}
	}
	return result, nil
}

// ── Mock LookupCache ──

type mockCache struct {
	data map[string][]byte
	gets int
	hits int
	sets int
	err  error
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (c *mockCache) GetJSON(_ context.Context, key string, dst interface{}) (bool, error) {
	c.gets++
	if c.err != nil {
		return false, c.err
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dst)
}

func (c *mockCache) SetJSON(_ context.Context, key string, v interface{}, _ time.Duration) error {
	c.sets++
	if c.err != nil {
		return c.err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}
