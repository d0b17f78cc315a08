package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schedule-management/backend/config"
	"schedule-management/backend/internal/api/handler"
	"schedule-management/backend/internal/api/middleware"
)

// Pinger 健康检查依赖（数据库）
type Pinger interface {
	Ping(ctx context.Context) error
}

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时写接口不限流
func Setup(cfg *config.Config, h *handler.Handler, store Pinger, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			logger.Warn("健康检查失败", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	writeLimit := middleware.RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 院系模块
		departments := v1.Group("/departments")
		{
			departments.GET("", h.Department.ListDepartments)
			departments.GET("/search", h.Department.SearchDepartments)
			departments.GET("/:id", h.Department.GetDepartment)
			departments.POST("", writeLimit, h.Department.CreateDepartment)
		}

		// 专业方向模块
		studySpecs := v1.Group("/study-specializations")
		{
			studySpecs.GET("/search", h.StudySpec.SearchStudySpecs)
			studySpecs.POST("", writeLimit, h.StudySpec.CreateStudySpec)
		}

		// 教学班模块
		v1.POST("/study-groups", writeLimit, h.StudyGroup.CreateStudyGroup)

		// 教室模块
		rooms := v1.Group("/rooms")
		{
			rooms.GET("/search", h.Room.SearchRooms)
			rooms.POST("", writeLimit, h.Room.CreateRoom)
		}

		// 课程模块
		subjects := v1.Group("/subjects")
		{
			subjects.GET("/search", h.Subject.SearchSubjects)
			subjects.POST("", writeLimit, h.Subject.CreateSubject)
		}

		// 下拉框字典与名称/ID 互转
		helpers := v1.Group("/helpers")
		{
			helpers.GET("/pagination-types", h.Helper.GetPaginationTypes)
			helpers.GET("/study-types", h.Helper.GetStudyTypes)
			helpers.GET("/study-degree-types", h.Helper.GetStudyDegreeTypes)
			helpers.GET("/semesters", h.Helper.GetSemesters)
			helpers.GET("/subject-types", h.Helper.GetSubjectTypes)
			helpers.GET("/room-types", h.Helper.GetRoomTypes)
			helpers.GET("/roles", h.Helper.GetRoles)
			helpers.GET("/study-specs", h.Helper.GetStudySpecs)
			helpers.GET("/study-groups-semesters", h.Helper.GetStudyGroupSemesters)
			helpers.POST("/convert-names-to-ids", h.Helper.ConvertNamesToIds)
			helpers.POST("/convert-ids-to-names", h.Helper.ConvertIdsToNames)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/departments", h.Export.ExportDepartments)
		}
	}

	return r
}
