// Package http assembles the HTTP surface: middleware pipeline, handlers,
// and the per-route access policy.
package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appaudit "stockward/internal/application/audit"
	auditusecases "stockward/internal/application/audit/usecases"
	itemusecases "stockward/internal/application/item/usecases"
	reportusecases "stockward/internal/application/report/usecases"
	userusecases "stockward/internal/application/user/usecases"
	"stockward/internal/infrastructure/auth"
	"stockward/internal/infrastructure/config"
	"stockward/internal/infrastructure/permission"
	"stockward/internal/infrastructure/repository"
	"stockward/internal/interfaces/http/handlers"
	"stockward/internal/interfaces/http/middleware"
	"stockward/internal/shared/authorization"
	"stockward/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	itemHandler     *handlers.ItemHandler
	userHandler     *handlers.UserHandler
	reportHandler   *handlers.ReportHandler
	auditHandler    *handlers.AuditHandler
	authMiddleware  *middleware.AuthMiddleware
	authzMiddleware *middleware.AuthzMiddleware
	bulkRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies. redisClient
// may be nil; the bulk upload rate limiter then fails open.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	itemRepo := repository.NewItemRepository(db, log)
	roleRepo := repository.NewRoleAssignmentRepository(db, log)
	auditRepo := repository.NewAuditLogRepository(db, log)

	recorder := appaudit.NewRecorder(auditRepo, log)
	threshold := cfg.Inventory.LowStockThreshold

	createItemUC := itemusecases.NewCreateItemUseCase(itemRepo, recorder, log)
	getItemUC := itemusecases.NewGetItemUseCase(itemRepo, log)
	listItemsUC := itemusecases.NewListItemsUseCase(itemRepo, log)
	updateItemUC := itemusecases.NewUpdateItemUseCase(itemRepo, recorder, threshold, log)
	updateQuantityUC := itemusecases.NewUpdateQuantityUseCase(itemRepo, recorder, threshold, log)
	deleteItemUC := itemusecases.NewDeleteItemUseCase(itemRepo, recorder, log)
	bulkUpdateUC := itemusecases.NewBulkUpdateQuantityUseCase(updateQuantityUC, recorder, log)

	lowStockUC := reportusecases.NewLowStockUseCase(itemRepo, threshold, log)
	itemTrendsUC := reportusecases.NewItemTrendsUseCase(itemRepo, auditRepo, log)
	monthlyReportUC := reportusecases.NewMonthlyReportUseCase(itemRepo, recorder, threshold, log)

	listUsersUC := userusecases.NewListUsersUseCase(roleRepo, log)
	getRoleUC := userusecases.NewGetRoleUseCase(roleRepo, log)
	assignRoleUC := userusecases.NewAssignRoleUseCase(roleRepo, recorder, log)

	listAuditLogsUC := auditusecases.NewListAuditLogsUseCase(auditRepo, log)

	verifier := auth.NewVerifier(cfg.Auth.IdentityProvider.JWTSecret, cfg.Auth.IdentityProvider.Issuer)
	enforcer, err := permission.NewEnforcer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to build access policy enforcer: %w", err)
	}

	var bulkRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		bulkRateLimiter = middleware.NewRateLimiter(redisClient, cfg.Inventory.BulkUploadRateLimit, time.Minute)
	}

	return &Router{
		engine: engine,
		itemHandler: handlers.NewItemHandler(
			createItemUC, getItemUC, listItemsUC, updateItemUC, updateQuantityUC,
			deleteItemUC, bulkUpdateUC, itemTrendsUC,
			int64(cfg.Inventory.BulkUploadMaxBytes), log),
		userHandler:     handlers.NewUserHandler(listUsersUC, getRoleUC, assignRoleUC, log),
		reportHandler:   handlers.NewReportHandler(lowStockUC, monthlyReportUC, log),
		auditHandler:    handlers.NewAuditHandler(listAuditLogsUC, log),
		authMiddleware:  middleware.NewAuthMiddleware(verifier, log),
		authzMiddleware: middleware.NewAuthzMiddleware(roleRepo, enforcer, log),
		bulkRateLimiter: bulkRateLimiter,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", handlers.Health)

	api := r.engine.Group("/api")
	api.Use(r.authMiddleware.RequireAuth())
	api.Use(r.authzMiddleware.ResolveRole())

	requireOp := r.authzMiddleware.RequireOperation

	items := api.Group("/items")
	{
		items.POST("", requireOp(authorization.OpItemCreate), r.itemHandler.CreateItem)
		items.GET("", requireOp(authorization.OpItemList), r.itemHandler.ListItems)
		items.POST("/bulk-update-quantity", r.bulkLimit(), requireOp(authorization.OpItemBulkUpdate), r.itemHandler.BulkUpdateQuantity)
		items.GET("/:id", requireOp(authorization.OpItemRead), r.itemHandler.GetItem)
		items.PUT("/:id", requireOp(authorization.OpItemUpdate), r.itemHandler.UpdateItem)
		items.PATCH("/:id/quantity", requireOp(authorization.OpItemUpdateQuantity), r.itemHandler.UpdateQuantity)
		items.DELETE("/:id", requireOp(authorization.OpItemDelete), r.itemHandler.DeleteItem)
		items.GET("/:id/trends", requireOp(authorization.OpItemTrends), r.itemHandler.GetItemTrends)
	}

	users := api.Group("/users")
	{
		users.GET("", requireOp(authorization.OpUserList), r.userHandler.ListUsers)
		users.GET("/:id/role", requireOp(authorization.OpRoleRead), r.userHandler.GetRole)
		users.PUT("/:id/role", requireOp(authorization.OpRoleAssign), r.userHandler.AssignRole)
	}

	api.GET("/alerts/low-stock", requireOp(authorization.OpAlertLowStock), r.reportHandler.LowStock)
	api.GET("/reports/inventory/monthly", requireOp(authorization.OpReportMonthly), r.reportHandler.MonthlyReport)
	api.GET("/audit-logs", requireOp(authorization.OpAuditList), r.auditHandler.ListAuditLogs)
}

// bulkLimit returns the rate limiter middleware for the bulk route, or a
// pass-through when no limiter is configured.
func (r *Router) bulkLimit() gin.HandlerFunc {
	if r.bulkRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.bulkRateLimiter.Limit()
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
