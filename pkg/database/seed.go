package database

import (
	"fmt"

	"gorm.io/gorm"

	"schedule-management/backend/internal/model"
)

// 字典数据，与 migrations/000002_seed_reference_data.up.sql 保持一致

var studyTypes = []model.StudyType{
	{Name: "Full-time", Alias: "ST"},
	{Name: "Part-time", Alias: "NS/Z"},
}

var studyDegrees = []model.StudyDegree{
	{Name: "First-cycle", Alias: "I"},
	{Name: "Second-cycle", Alias: "II"},
	{Name: "Uniform master", Alias: "JM"},
}

var semesterNames = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

var roomTypes = []model.RoomType{
	{Name: "Lecture hall", Alias: "W"},
	{Name: "Classroom", Alias: "C"},
	{Name: "Laboratory", Alias: "L"},
	{Name: "Computer lab", Alias: "K"},
}

var subjectTypes = []model.SubjectType{
	{Name: "Lecture", Alias: "W"},
	{Name: "Exercises", Alias: "C"},
	{Name: "Laboratory", Alias: "L"},
	{Name: "Project", Alias: "P"},
	{Name: "Seminar", Alias: "S"},
}

var roles = []model.Role{
	{Name: "administrator"},
	{Name: "editor"},
	{Name: "teacher"},
	{Name: "student"},
}

// SeedReferenceData 幂等写入字典数据（已存在则跳过）
func SeedReferenceData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range studyTypes {
			st := studyTypes[i]
			if err := tx.Where(model.StudyType{Alias: st.Alias}).FirstOrCreate(&st).Error; err != nil {
				return fmt.Errorf("初始化学习形式失败: %w", err)
			}
		}
		for i := range studyDegrees {
			sd := studyDegrees[i]
			if err := tx.Where(model.StudyDegree{Alias: sd.Alias}).FirstOrCreate(&sd).Error; err != nil {
				return fmt.Errorf("初始化学位层次失败: %w", err)
			}
		}
		for i, name := range semesterNames {
			sem := model.Semester{Name: name, Number: i + 1}
			if err := tx.Where(model.Semester{Number: sem.Number}).FirstOrCreate(&sem).Error; err != nil {
				return fmt.Errorf("初始化学期失败: %w", err)
			}
		}
		for i := range roomTypes {
			rt := roomTypes[i]
			if err := tx.Where(model.RoomType{Name: rt.Name}).FirstOrCreate(&rt).Error; err != nil {
				return fmt.Errorf("初始化教室类型失败: %w", err)
			}
		}
		for i := range subjectTypes {
			st := subjectTypes[i]
			if err := tx.Where(model.SubjectType{Name: st.Name}).FirstOrCreate(&st).Error; err != nil {
				return fmt.Errorf("初始化课程类型失败: %w", err)
			}
		}
		for i := range roles {
			r := roles[i]
			if err := tx.Where(model.Role{Name: r.Name}).FirstOrCreate(&r).Error; err != nil {
				return fmt.Errorf("初始化角色失败: %w", err)
			}
		}
		return nil
	})
}
