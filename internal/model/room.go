package model

// RoomType 教室类型字典表 — 对应 room_types
type RoomType struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name  string `gorm:"type:varchar(50);not null" json:"name"`
	Alias string `gorm:"type:varchar(10);not null" json:"alias"`
}

// TableName 指定表名
func (RoomType) TableName() string { return "room_types" }

// Room 教室表 — 对应 rooms，名称在院系内唯一
type Room struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name         string `gorm:"type:varchar(50);not null"  json:"name"`
	Description  string `gorm:"type:varchar(300)"          json:"description,omitempty"`
	Capacity     int    `gorm:"not null;default:0"         json:"capacity"`
	RoomTypeID   int64  `gorm:"not null;index"             json:"room_type_id"`
	DepartmentID int64  `gorm:"not null;index"             json:"department_id"`
	NameKey      string `gorm:"type:text;not null;default:''" json:"-"`
	BaseModel
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }
