package model

// Department 院系表 — 对应 departments
// name / alias 的折叠列 name_key / alias_key 上建唯一索引
type Department struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name  string `gorm:"type:varchar(100);not null" json:"name"`
	Alias string `gorm:"type:varchar(20);not null"  json:"alias"`

	NameKey  string `gorm:"type:text;not null;default:''" json:"-"`
	AliasKey string `gorm:"type:text;not null;default:''" json:"-"`
	BaseModel

	StudySpecializations []StudySpecialization `gorm:"foreignKey:DepartmentID" json:"-"`
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }
