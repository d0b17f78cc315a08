package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schedule-management/backend/internal/model"
	"schedule-management/backend/internal/repository"
	"schedule-management/backend/pkg/database"
)

// newTestDB 每个测试独立的内存 sqlite，单连接保证同一个库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createDepartments(t *testing.T, repo *repository.Repository, names ...string) []*model.Department {
	t.Helper()
	depts := make([]*model.Department, 0, len(names))
	for _, n := range names {
		d := &model.Department{Name: n, Alias: n[:3]}
		require.NoError(t, repo.Department.Create(context.Background(), d))
		depts = append(depts, d)
	}
	return depts
}

// ── Department ──

func TestDepartmentRepo_CreateAssignsID(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))

	dept := &model.Department{Name: "Informatics", Alias: "INF"}
	require.NoError(t, repo.Department.Create(context.Background(), dept))

	assert.NotZero(t, dept.ID)
	assert.False(t, dept.CreatedAt.IsZero())
}

func TestDepartmentRepo_FindByNameOrAlias(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Department.Create(ctx, &model.Department{Name: "Informatics", Alias: "INF"}))

	found, err := repo.Department.FindByNameOrAlias(ctx, "INFORMATICS", "other")
	require.NoError(t, err)
	assert.Equal(t, "Informatics", found.Name)

	found, err = repo.Department.FindByNameOrAlias(ctx, "Mathematics", "inf")
	require.NoError(t, err)
	assert.Equal(t, "INF", found.Alias)

	_, err = repo.Department.FindByNameOrAlias(ctx, "Mathematics", "MAT")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDepartmentRepo_UniqueIndexIsCaseInsensitive(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Department.Create(ctx, &model.Department{Name: "Informatics", Alias: "INF"}))

	err := repo.Department.Create(ctx, &model.Department{Name: "informatics", Alias: "X"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	err = repo.Department.Create(ctx, &model.Department{Name: "Other", Alias: "inf"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	names, err := repo.Department.SearchNames(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Informatics"}, names)
}

func TestDepartmentRepo_SearchNames(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	createDepartments(t, repo, "Physics", "Biology", "Chemistry")

	all, err := repo.Department.SearchNames(ctx, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Biology", "Chemistry", "Physics"}, all)

	matched, err := repo.Department.SearchNames(ctx, "S")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Chemistry", "Physics"}, matched)

	matched, err = repo.Department.SearchNames(ctx, "bIo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Biology"}, matched)

	none, err := repo.Department.SearchNames(ctx, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDepartmentRepo_SearchNamesEscapesWildcards(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	createDepartments(t, repo, "Physics", "Econ_100%")

	matched, err := repo.Department.SearchNames(ctx, "%")
	require.NoError(t, err)
	assert.Equal(t, []string{"Econ_100%"}, matched)

	matched, err = repo.Department.SearchNames(ctx, "_")
	require.NoError(t, err)
	assert.Equal(t, []string{"Econ_100%"}, matched)
}

func TestDepartmentRepo_ListPage(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	createDepartments(t, repo, "Physics", "Biology", "Chemistry", "Mathematics")

	page, total, err := repo.Department.ListPage(ctx, "", 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Biology", page[0].Name)
	assert.Equal(t, "Chemistry", page[1].Name)

	page, total, err = repo.Department.ListPage(ctx, "ic", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Mathematics", page[0].Name)
}

func TestDepartmentRepo_StudySpecsCountAndPreload(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	depts := createDepartments(t, repo, "Informatics", "Biology")

	for _, name := range []string{"Software", "Networks"} {
		require.NoError(t, repo.StudySpec.Create(ctx, &model.StudySpecialization{
			Name: name, Alias: name[:3], DepartmentID: depts[0].ID, StudyTypeID: 1, StudyDegreeID: 1,
		}))
	}

	counts, err := repo.Department.BatchCountStudySpecs(ctx, []int64{depts[0].ID, depts[1].ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[depts[0].ID])
	assert.EqualValues(t, 0, counts[depts[1].ID])

	list, err := repo.Department.ListWithStudySpecs(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Informatics", list[1].Name)
	require.Len(t, list[1].StudySpecializations, 2)
	assert.Equal(t, "Networks", list[1].StudySpecializations[0].Name)
	require.NotNil(t, list[1].StudySpecializations[0].StudyType)
	assert.Equal(t, "ST", list[1].StudySpecializations[0].StudyType.Alias)
}

// ── StudySpecialization ──

func TestStudySpecRepo_FindDuplicateScopedByDepartmentAndType(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	depts := createDepartments(t, repo, "Informatics", "Biology")

	spec := &model.StudySpecialization{
		Name: "Software", Alias: "SE", DepartmentID: depts[0].ID, StudyTypeID: 1, StudyDegreeID: 1,
	}
	require.NoError(t, repo.StudySpec.Create(ctx, spec))

	_, err := repo.StudySpec.FindDuplicate(ctx, &model.StudySpecialization{
		Name: "SOFTWARE", Alias: "new", DepartmentID: depts[0].ID, StudyTypeID: 1, StudyDegreeID: 1,
	})
	assert.NoError(t, err)

	// 不同学习形式不算重复
	_, err = repo.StudySpec.FindDuplicate(ctx, &model.StudySpecialization{
		Name: "Software", Alias: "SE", DepartmentID: depts[0].ID, StudyTypeID: 2, StudyDegreeID: 1,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 其他院系同名不算重复
	_, err = repo.StudySpec.FindDuplicate(ctx, &model.StudySpecialization{
		Name: "Software", Alias: "SE", DepartmentID: depts[1].ID, StudyTypeID: 1, StudyDegreeID: 1,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStudySpecRepo_ListByDepartmentPreloads(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	depts := createDepartments(t, repo, "Informatics")

	require.NoError(t, repo.StudySpec.Create(ctx, &model.StudySpecialization{
		Name: "Software", Alias: "SE", DepartmentID: depts[0].ID, StudyTypeID: 2, StudyDegreeID: 2,
	}))

	specs, err := repo.StudySpec.ListByDepartment(ctx, depts[0].ID)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "Software (NS/Z) II", specs[0].DisplayName())

	names, err := repo.StudySpec.SearchNames(ctx, "soft", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Software"}, names)
}

// ── StudyGroup ──

func TestStudyGroupRepo_ListSemesters(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	depts := createDepartments(t, repo, "Informatics")

	spec := &model.StudySpecialization{
		Name: "Software", Alias: "SE", DepartmentID: depts[0].ID, StudyTypeID: 1, StudyDegreeID: 1,
	}
	require.NoError(t, repo.StudySpec.Create(ctx, spec))

	for _, g := range []struct {
		name     string
		semester int64
	}{{"G1", 3}, {"G2", 1}, {"G3", 3}} {
		require.NoError(t, repo.StudyGroup.Create(ctx, &model.StudyGroup{
			Name: g.name, DepartmentID: depts[0].ID, StudySpecializationID: spec.ID, SemesterID: g.semester,
		}))
	}

	semesters, err := repo.StudyGroup.ListSemesters(ctx, depts[0].ID, spec.ID)
	require.NoError(t, err)
	require.Len(t, semesters, 2)
	assert.Equal(t, "I", semesters[0].Name)
	assert.Equal(t, "III", semesters[1].Name)

	_, err = repo.StudyGroup.FindByName(ctx, depts[0].ID, "g2")
	assert.NoError(t, err)

	err = repo.StudyGroup.Create(ctx, &model.StudyGroup{
		Name: "g1", DepartmentID: depts[0].ID, StudySpecializationID: spec.ID, SemesterID: 2,
	})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

// ── Lookup ──

func TestLookupRepo_ReferenceData(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()

	types, err := repo.Lookup.ListStudyTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 2)

	semesters, err := repo.Lookup.ListSemesters(ctx)
	require.NoError(t, err)
	require.Len(t, semesters, 10)
	assert.Equal(t, 1, semesters[0].Number)

	subjectTypes, err := repo.Lookup.ListSubjectTypes(ctx, "LAB")
	require.NoError(t, err)
	require.Len(t, subjectTypes, 1)
	assert.Equal(t, "Laboratory", subjectTypes[0].Name)

	roles, err := repo.Lookup.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 4)
}

func TestLookupRepo_NamesAndIDs(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	depts := createDepartments(t, repo, "Informatics", "Biology")

	rows, err := repo.Lookup.FindByNames(ctx, model.KindDepartments, []string{"Biology", "Informatics", "INFORMATICS", "Missing"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, depts[0].ID, rows[0].ID)
	assert.Equal(t, "Informatics", rows[0].Name)

	rows, err = repo.Lookup.FindByIDs(ctx, model.KindDepartments, []int64{depts[1].ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Biology", rows[0].Name)

	ok, err := repo.Lookup.Exists(ctx, model.KindDepartments, depts[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Lookup.Exists(ctx, model.KindSemesters, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Lookup.FindByNames(ctx, model.EntityKind("teachers"), []string{"x"})
	assert.Error(t, err)
}

func TestDepartmentRepo_NonASCIIFolding(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	dept := &model.Department{Name: "Łączność", Alias: "ŁĄ"}
	require.NoError(t, repo.Department.Create(ctx, dept))
	assert.Equal(t, "łączność", dept.NameKey)

	err := repo.Department.Create(ctx, &model.Department{Name: "ŁĄCZNOŚĆ", Alias: "X"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	err = repo.Department.Create(ctx, &model.Department{Name: "Other", Alias: "łą"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	found, err := repo.Department.FindByNameOrAlias(ctx, "ŁĄCZNOŚĆ", "none")
	require.NoError(t, err)
	assert.Equal(t, dept.ID, found.ID)

	matched, err := repo.Department.SearchNames(ctx, "Łą")
	require.NoError(t, err)
	assert.Equal(t, []string{"Łączność"}, matched)

	rows, err := repo.Lookup.FindByNames(ctx, model.KindDepartments, []string{"Łączność"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, dept.ID, rows[0].ID)
}

func TestRoomRepo_NonASCIIFolding(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	dept := createDepartments(t, repo, "Informatics")[0]
	require.NoError(t, repo.Room.Create(ctx, &model.Room{Name: "Sala Żółta", RoomTypeID: 1, DepartmentID: dept.ID}))

	_, err := repo.Room.FindByName(ctx, dept.ID, "SALA ŻÓŁTA")
	require.NoError(t, err)

	err = repo.Room.Create(ctx, &model.Room{Name: "sala żółta", RoomTypeID: 1, DepartmentID: dept.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	names, err := repo.Room.SearchNames(ctx, "ŻÓŁ", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sala Żółta"}, names)
}

func TestRepository_Ping(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	assert.NoError(t, repo.Ping(context.Background()))
}
