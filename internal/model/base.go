package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// NamedRow 字典表通用投影（id + name），用于下拉选项与名称/ID 互转
type NamedRow struct {
	ID   int64  `gorm:"column:id"`
	Name string `gorm:"column:name"`
}
