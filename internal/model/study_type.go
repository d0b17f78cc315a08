package model

// StudyType 学习形式字典表 — 对应 study_types
type StudyType struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name  string `gorm:"type:varchar(50);not null"  json:"name"`
	Alias string `gorm:"type:varchar(10);not null;uniqueIndex" json:"alias"`
}

// TableName 指定表名
func (StudyType) TableName() string { return "study_types" }

// StudyDegree 学位层次字典表 — 对应 study_degrees
type StudyDegree struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name  string `gorm:"type:varchar(50);not null"  json:"name"`
	Alias string `gorm:"type:varchar(10);not null;uniqueIndex" json:"alias"`
}

// TableName 指定表名
func (StudyDegree) TableName() string { return "study_degrees" }
