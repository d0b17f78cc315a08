package handler

import (
	"schedule-management/backend/config"
	"schedule-management/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Department *DepartmentHandler
	StudySpec  *StudySpecHandler
	StudyGroup *StudyGroupHandler
	Room       *RoomHandler
	Subject    *SubjectHandler
	Helper     *HelperHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	dup := cfg.Server.DuplicateStatus
	return &Handler{
		Department: NewDepartmentHandler(svc.Department, dup),
		StudySpec:  NewStudySpecHandler(svc.StudySpec, dup),
		StudyGroup: NewStudyGroupHandler(svc.StudyGroup, dup),
		Room:       NewRoomHandler(svc.Room, dup),
		Subject:    NewSubjectHandler(svc.Subject, dup),
		Helper:     NewHelperHandler(svc.Helper),
		Export:     NewExportHandler(svc.Export),
	}
}
