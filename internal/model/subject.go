package model

// SubjectType 课程类型字典表 — 对应 subject_types
type SubjectType struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name  string `gorm:"type:varchar(50);not null" json:"name"`
	Alias string `gorm:"type:varchar(10);not null" json:"alias"`
}

// TableName 指定表名
func (SubjectType) TableName() string { return "subject_types" }

// Subject 课程表 — 对应 subjects，名称在院系内唯一
type Subject struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	Alias         string `gorm:"type:varchar(20)"           json:"alias,omitempty"`
	Description   string `gorm:"type:text"                  json:"description,omitempty"`
	SubjectTypeID int64  `gorm:"not null;index"             json:"subject_type_id"`
	DepartmentID  int64  `gorm:"not null;index"             json:"department_id"`
	NameKey       string `gorm:"type:text;not null;default:''" json:"-"`
	BaseModel
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }
