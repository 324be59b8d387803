// Package system exposes operational endpoints: liveness, dependency health
// and server clock sync.
package system

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modelmart/core/internal/pkg/redis"
	"gorm.io/gorm"
)

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, cache *redis.Client) {
	rg.GET("/health", func(c *gin.Context) {
		dbOK := false
		if sqlDB, err := db.DB(); err == nil {
			dbOK = sqlDB.Ping() == nil
		}

		redisOK := false
		if cache != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			redisOK = cache.Raw().Ping(ctx).Err() == nil
			cancel()
		}

		status := "ok"
		code := http.StatusOK
		if !dbOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":   status,
			"database": dbOK,
			"redis":    redisOK,
		})
	})

	rg.GET("/server-time", func(c *gin.Context) {
		t2 := time.Now().UnixMilli()
		c.JSON(http.StatusOK, gin.H{
			"t2": t2,
			"t3": time.Now().UnixMilli(),
		})
	})
}
