package model

// StudyGroup 教学班表 — 对应 study_groups
type StudyGroup struct {
	ID                    int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name                  string `gorm:"type:varchar(100);not null" json:"name"`
	DepartmentID          int64  `gorm:"not null;index"             json:"department_id"`
	StudySpecializationID int64  `gorm:"not null;index"             json:"study_specialization_id"`
	SemesterID            int64  `gorm:"not null;index"             json:"semester_id"`
	NameKey               string `gorm:"type:text;not null;default:''" json:"-"`
	BaseModel

	Semester *Semester `gorm:"foreignKey:SemesterID" json:"semester,omitempty"`
}

// TableName 指定表名
func (StudyGroup) TableName() string { return "study_groups" }
