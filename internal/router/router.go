package router

import (
	"time"

	"github.com/Italzenergy/AlzConnect-app/internal/authz"
	"github.com/Italzenergy/AlzConnect-app/internal/config"
	"github.com/Italzenergy/AlzConnect-app/internal/handler"
	"github.com/Italzenergy/AlzConnect-app/internal/middleware"
	"github.com/Italzenergy/AlzConnect-app/internal/repository"
	"github.com/Italzenergy/AlzConnect-app/internal/service"
	"github.com/Italzenergy/AlzConnect-app/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	carrierRepo := repository.NewCarrierRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	customerSvc := service.NewCustomerService(customerRepo)
	orderSvc := service.NewOrderService(orderRepo, customerRepo, dispatcher)
	carrierSvc := service.NewCarrierService(carrierRepo)
	routeSvc := service.NewRouteService(routeRepo, orderRepo, carrierRepo)
	documentSvc := service.NewDocumentService(documentRepo, customerRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	carriersH := handler.NewCarriersHandler(carrierSvc)
	routesH := handler.NewRoutesHandler(routeSvc)
	documentsH := handler.NewDocumentsHandler(documentSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. The route-level role cut is coarse (staff vs admin);
	// the services re-check every capability against the authz table.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	staff := middleware.RequireRole(authz.RoleAdmin, authz.RoleLogistica)
	adminOnly := middleware.RequireRole(authz.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		users := v1.Group("/users", adminOnly)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		customers := v1.Group("/customers", staff)
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/active", customersH.ListActive)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		orders := v1.Group("/orders", staff)
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.PUT("/:id", ordersH.Update)
			orders.POST("/:id/events", ordersH.AppendEvent)
			orders.GET("/:id/events", ordersH.ListEvents)
		}

		routes := v1.Group("/routes", staff)
		{
			routes.POST("", routesH.Create)
			routes.GET("", routesH.List)
			routes.GET("/:id", routesH.Get)
			routes.PUT("/:id", routesH.Update)
		}

		carriers := v1.Group("/carriers", staff)
		{
			carriers.POST("", carriersH.Create)
			carriers.GET("", carriersH.List)
			carriers.GET("/:id", carriersH.Get)
			carriers.PUT("/:id", carriersH.Update)
		}
		v1.DELETE("/carriers/:id", adminOnly, carriersH.Delete)

		// Documents: catalog reads and grants are staff; catalog writes and
		// revocation are admin only
		v1.GET("/documents", staff, documentsH.List)
		v1.POST("/documents/:id/assignments", staff, documentsH.Assign)
		v1.GET("/documents/:id/assignments", staff, documentsH.ListAssignments)
		documents := v1.Group("/documents", adminOnly)
		{
			documents.POST("", documentsH.Create)
			documents.PUT("/:id", documentsH.Update)
			documents.DELETE("/:id", documentsH.Delete)
		}
		v1.DELETE("/assignments/:id", adminOnly, documentsH.Unassign)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
