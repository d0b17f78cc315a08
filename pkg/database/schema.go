package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schedule-management/backend/internal/model"
)

// uniqueIndexes 折叠列上的唯一约束，与 migrations/000003 保持一致
var uniqueIndexes = []string{
	`DROP INDEX IF EXISTS uq_departments_name`,
	`DROP INDEX IF EXISTS uq_departments_alias`,
	`DROP INDEX IF EXISTS uq_study_specs_name`,
	`DROP INDEX IF EXISTS uq_study_specs_alias`,
	`DROP INDEX IF EXISTS uq_study_groups_name`,
	`DROP INDEX IF EXISTS uq_rooms_name`,
	`DROP INDEX IF EXISTS uq_subjects_name`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_departments_name_key ON departments (name_key)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_departments_alias_key ON departments (alias_key)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_study_specs_name_key ON study_specializations (department_id, study_type_id, study_degree_id, name_key)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_study_specs_alias_key ON study_specializations (department_id, study_type_id, study_degree_id, alias_key)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_study_groups_name_key ON study_groups (department_id, name_key)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_rooms_name_key ON rooms (department_id, name_key)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_subjects_name_key ON subjects (department_id, name_key)`,
}

// AutoMigrate 以 GORM 建表（sqlite 本地开发与测试使用），
// 随后回填折叠列、建唯一索引并写入字典数据
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Department{},
		&model.StudyType{},
		&model.StudyDegree{},
		&model.Semester{},
		&model.StudySpecialization{},
		&model.StudyGroup{},
		&model.RoomType{},
		&model.Room{},
		&model.SubjectType{},
		&model.Subject{},
		&model.Role{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate 失败: %w", err)
	}

	if err := backfillNameKeys(db); err != nil {
		return fmt.Errorf("回填折叠列失败: %w", err)
	}

	for _, stmt := range uniqueIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("创建唯一索引失败: %w", err)
		}
	}

	return SeedReferenceData(db)
}

// backfillNameKeys 为新增折叠列之前写入的行补齐 *_key（BeforeSave 负责计算）
func backfillNameKeys(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		backfill[model.Department],
		backfill[model.StudySpecialization],
		backfill[model.StudyGroup],
		backfill[model.Room],
		backfill[model.Subject],
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	return nil
}

func backfill[T any](db *gorm.DB) error {
	var rows []T
	if err := db.Where("name_key = ''").Find(&rows).Error; err != nil {
		return err
	}
	for i := range rows {
		if err := db.Omit(clause.Associations).Save(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
