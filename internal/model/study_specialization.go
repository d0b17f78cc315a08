package model

import "fmt"

// StudySpecialization 专业方向表 — 对应 study_specializations
type StudySpecialization struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	Alias         string `gorm:"type:varchar(20);not null"  json:"alias"`
	StudyTypeID   int64  `gorm:"not null;index"             json:"study_type_id"`
	StudyDegreeID int64  `gorm:"not null;index"             json:"study_degree_id"`
	DepartmentID  int64  `gorm:"not null;index"             json:"department_id"`

	NameKey  string `gorm:"type:text;not null;default:''" json:"-"`
	AliasKey string `gorm:"type:text;not null;default:''" json:"-"`
	BaseModel

	StudyType   *StudyType   `gorm:"foreignKey:StudyTypeID"   json:"study_type,omitempty"`
	StudyDegree *StudyDegree `gorm:"foreignKey:StudyDegreeID" json:"study_degree,omitempty"`
	Department  *Department  `gorm:"foreignKey:DepartmentID"  json:"department,omitempty"`
}

// TableName 指定表名
func (StudySpecialization) TableName() string { return "study_specializations" }

// DisplayName 下拉框展示名，例如 "Informatics (ST) I"
// 需预加载 StudyType / StudyDegree，缺失时退化为原名
func (s *StudySpecialization) DisplayName() string {
	name := s.Name
	if s.StudyType != nil {
		name = fmt.Sprintf("%s (%s)", name, s.StudyType.Alias)
	}
	if s.StudyDegree != nil {
		name = fmt.Sprintf("%s %s", name, s.StudyDegree.Alias)
	}
	return name
}

// StudySpecType 专业方向的学习形式筛选标签
type StudySpecType string

const (
	StudySpecTypeAll StudySpecType = "ALL"
	StudySpecTypeST  StudySpecType = "ST"
	StudySpecTypeNSZ StudySpecType = "NS/Z"
)

// ParseStudySpecType 解析筛选标签，空串视为 ALL
func ParseStudySpecType(s string) (StudySpecType, bool) {
	switch StudySpecType(s) {
	case "", StudySpecTypeAll:
		return StudySpecTypeAll, true
	case StudySpecTypeST:
		return StudySpecTypeST, true
	case StudySpecTypeNSZ:
		return StudySpecTypeNSZ, true
	}
	return "", false
}

// Matches 判断学习形式别名是否落在该标签内
func (t StudySpecType) Matches(studyTypeAlias string) bool {
	return t == StudySpecTypeAll || string(t) == studyTypeAlias
}
