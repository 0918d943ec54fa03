package controller

import (
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB             *gorm.DB
	Redis          *redis.Client
	CatalogService *service.CatalogService
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, catalogService *service.CatalogService) *HealthController {
	return &HealthController{DB: db, Redis: rdb, CatalogService: catalogService}
}

// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	catalog := c.CatalogService.Snapshot()
	status := gin.H{
		"status":   "ok",
		"time":     time.Now().Format(time.RFC3339),
		"pathways": catalog.Len(),
	}

	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if sqlDB, err := c.DB.DB(); err != nil || sqlDB.PingContext(checkCtx) != nil {
		status["database"] = "down"
		status["status"] = "degraded"
	} else {
		status["database"] = "up"
	}

	if c.Redis != nil {
		if err := c.Redis.Ping(checkCtx).Err(); err != nil {
			status["redis"] = "down"
			status["status"] = "degraded"
		} else {
			status["redis"] = "up"
		}
	}

	util.Success(ctx, status)
}
