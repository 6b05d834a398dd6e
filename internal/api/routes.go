package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"campus_api/internal/api/handlers"
	"campus_api/internal/middleware"
	"campus_api/internal/service"
)

// HealthChecker 健康檢查依賴的資料庫連線
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Options 路由器的外部依賴，Health 和 Registry 可以為 nil
type Options struct {
	Logger      *zap.Logger
	Health      HealthChecker
	Registry    *prometheus.Registry
	CorsOrigins []string
}

// NewRouter 建立帶有日誌、恢復、CORS 和指標中間件的 gin 路由器
func NewRouter(services *service.Services, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(opts.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(opts.Logger, true))
	r.Use(cors.New(corsConfig(opts.CorsOrigins)))

	if opts.Registry != nil {
		r.Use(middleware.NewMetrics(opts.Registry).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	r.GET("/health", healthHandler(opts.Health))

	SetupRoutes(r, services, opts.Logger)
	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	return config
}

func healthHandler(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// SetupRoutes 註冊學生、教授和圖書館會籍的路由
func SetupRoutes(r *gin.Engine, services *service.Services, logger *zap.Logger) {
	// 初始化 handlers
	studentHandler := handlers.NewStudentHandler(services.Student, logger)
	professorHandler := handlers.NewProfessorHandler(services.Professor, logger)
	membershipHandler := handlers.NewLibraryMembershipHandler(services.LibraryMembership, logger)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	students := r.Group("/students")
	{
		students.GET("", studentHandler.ListStudents)
		students.POST("", studentHandler.CreateStudent)
		students.GET("/enriched", studentHandler.ListEnrichedStudents)
		students.PATCH("/:studentId", studentHandler.UpdateStudent)
		students.DELETE("/:studentId", studentHandler.DeleteStudent)

		// 圖書館會籍，每位學生最多一筆
		membership := students.Group("/:studentId/library-membership")
		{
			membership.GET("", membershipHandler.GetMembership)
			membership.POST("", membershipHandler.CreateMembership)
			membership.PATCH("", membershipHandler.UpdateMembership)
			membership.DELETE("", membershipHandler.DeleteMembership)
		}
	}

	professors := r.Group("/professors")
	{
		professors.GET("", professorHandler.ListProfessors)
		professors.POST("", professorHandler.CreateProfessor)
		professors.PATCH("/:professorId", professorHandler.UpdateProfessor)
		professors.DELETE("/:professorId", professorHandler.DeleteProfessor)

		// 指導關係
		professors.GET("/:professorId/proctorships", studentHandler.ListProctorships)
		professors.POST("/:professorId/proctorships", studentHandler.AssignProctor)
	}
}
