package router

import (
	"net/http"
	"time"

	"github.com/acadion/acadion-access/internal/config"
	"github.com/acadion/acadion-access/internal/handler"
	"github.com/acadion/acadion-access/internal/middleware"
	"github.com/acadion/acadion-access/internal/model"
	"github.com/acadion/acadion-access/internal/response"
	"github.com/acadion/acadion-access/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Access  *handler.AccessHandler
	Catalog *handler.CatalogHandler
	System  *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	tokenService *service.TokenService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Compress large payloads (matrix dumps, grant summaries) for clients
	// that accept brotli.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the unauthenticated catalog routes.
	catalogLimiter := middleware.NewRateLimiter(cfg.RatePerMinute, time.Minute)

	// ─── 1. Catalog Group (Public, Rate Limited, Cacheable) ────────────
	// The enumerations are process-lifetime constants, so clients may cache
	// them for an hour.
	catalog := router.Group("/api/v1/catalog")
	catalog.Use(catalogLimiter.Middleware(), middleware.CacheControl(3600))
	{
		catalog.GET("/roles", handlers.Catalog.ListRoles)
		catalog.GET("/permissions", handlers.Catalog.ListPermissions)
	}

	// ─── 2. Access Group (JWT + Revocation Check) ──────────────────────
	access := router.Group("/api/v1/access")
	access.Use(
		middleware.RequireAuth(tokenService),
		middleware.CheckTokenRevocation(tokenService),
	)
	{
		access.GET("/me", handlers.Access.GetMe)
		access.GET("/permissions/:permission", handlers.Access.CheckPermission)
		access.POST("/check", handlers.Access.CheckBatch)
		access.POST("/resource", handlers.Access.CheckResourceAccess)
		access.GET("/navigation", handlers.Access.GetNavigation)
		access.GET("/widgets", handlers.Access.GetWidgets)
	}

	// ─── 3. Admin Group (JWT + Revocation + RBAC) ──────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireAuth(tokenService),
		middleware.CheckTokenRevocation(tokenService),
	)
	{
		adminAPI.GET("/matrix",
			middleware.RequirePermission(model.PermissionManageRoles),
			handlers.Access.GetMatrix,
		)
		adminAPI.GET("/system/info",
			middleware.RequirePermission(model.PermissionViewAnalytics),
			handlers.System.GetSystemInfo,
		)
	}

	return router
}
