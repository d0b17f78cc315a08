package model

// EntityKind 名称/ID 互转支持的实体类型
type EntityKind string

const (
	KindDepartments          EntityKind = "departments"
	KindStudySpecializations EntityKind = "study-specializations"
	KindStudyTypes           EntityKind = "study-types"
	KindStudyDegrees         EntityKind = "study-degrees"
	KindSemesters            EntityKind = "semesters"
	KindStudyGroups          EntityKind = "study-groups"
	KindRooms                EntityKind = "rooms"
	KindRoomTypes            EntityKind = "room-types"
	KindSubjects             EntityKind = "subjects"
	KindSubjectTypes         EntityKind = "subject-types"
)

var kindTables = map[EntityKind]string{
	KindDepartments:          Department{}.TableName(),
	KindStudySpecializations: StudySpecialization{}.TableName(),
	KindStudyTypes:           StudyType{}.TableName(),
	KindStudyDegrees:         StudyDegree{}.TableName(),
	KindSemesters:            Semester{}.TableName(),
	KindStudyGroups:          StudyGroup{}.TableName(),
	KindRooms:                Room{}.TableName(),
	KindRoomTypes:            RoomType{}.TableName(),
	KindSubjects:             Subject{}.TableName(),
	KindSubjectTypes:         SubjectType{}.TableName(),
}

// ParseEntityKind 校验实体类型字符串
func ParseEntityKind(s string) (EntityKind, bool) {
	k := EntityKind(s)
	_, ok := kindTables[k]
	return k, ok
}

// Table 返回实体类型对应的表名，未知类型返回空串
func (k EntityKind) Table() string {
	return kindTables[k]
}
