package model

// Role 系统角色字典表 — 对应 roles
type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"              json:"id"`
	Name string `gorm:"type:varchar(30);not null;uniqueIndex" json:"name"`
}

// TableName 指定表名
func (Role) TableName() string { return "roles" }
