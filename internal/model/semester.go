package model

// Semester 学期字典表 — 对应 semesters（I ~ X）
type Semester struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name   string `gorm:"type:varchar(10);not null" json:"name"`
	Number int    `gorm:"not null;uniqueIndex"      json:"number"`
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }
