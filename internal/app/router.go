package app

import (
	"career_compass_backend/docs"
	"career_compass_backend/internal/middleware"
	"career_compass_backend/internal/model"
	"career_compass_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// 通路目录是公开的静态数据
		public.GET("/pathways", c.pathway.ListPathways)
		public.GET("/pathways/:name", c.pathway.GetPathway)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.GET("/profile", c.auth.Profile)

		cvs := authGroup.Group("/cvs")
		{
			cvs.POST("", c.cv.CreateCV)
			cvs.GET("", c.cv.ListCVs)
			cvs.GET("/:id", c.cv.GetCV)
			cvs.DELETE("/:id", c.cv.DeleteCV)
			cvs.POST("/:id/file", c.cv.UploadFile)

			cvs.POST("/:id/recommendations", c.recommendation.Generate)
			cvs.GET("/:id/recommendations", c.recommendation.List)

			cvs.POST("/:id/roadmaps/:pathway", c.roadmap.Generate)
			cvs.GET("/:id/roadmaps", c.roadmap.List)

			cvs.POST("/:id/progress/snapshots", c.progress.CaptureSnapshot)
			cvs.GET("/:id/progress/timeline", c.progress.Timeline)
			cvs.GET("/:id/progress/analytics", c.progress.Analytics)

			cvs.POST("/:id/learned-skills", c.progress.AddLearnedSkill)
			cvs.GET("/:id/learned-skills", c.progress.ListLearnedSkills)
			cvs.PUT("/:id/learned-skills/:skillId", c.progress.UpdateLearnedSkill)
			cvs.DELETE("/:id/learned-skills/:skillId", c.progress.DeleteLearnedSkill)
		}

		authGroup.GET("/roadmaps/:roadmapId", c.roadmap.Get)

		// 管理员接口：不等文件监听，立即重载目录
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
		{
			admin.POST("/catalog/reload", c.pathway.ReloadCatalog)
		}
	}
}
