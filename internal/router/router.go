package router

import (
	"time"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/config"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/handler"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/middleware"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/service"
	"github.com/Vinodh8492/Micro-Dusing-V2/internal/worker"

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
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	recipeMaterialRepo := repository.NewRecipeMaterialRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	dispensingRepo := repository.NewDispensingRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	storageRepo := repository.NewStorageBucketRepository(db)

	// Worker dispatcher, injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	recipeSvc := service.NewRecipeService(recipeRepo, userRepo, orderRepo, batchRepo,
		dispensingRepo, recipeMaterialRepo, dispatcher, cfg.OrderDeleteCascade)
	recipeMaterialSvc := service.NewRecipeMaterialService(recipeMaterialRepo)
	productionSvc := service.NewProductionService(orderRepo, recipeRepo, userRepo,
		batchRepo, dispensingRepo, dispatcher, cfg.OrderDeleteCascade)
	batchSvc := service.NewBatchService(batchRepo, dispensingRepo, orderRepo, materialRepo, userRepo)
	materialSvc := service.NewMaterialService(materialRepo)
	storageSvc := service.NewStorageService(storageRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	recipesH := handler.NewRecipesHandler(recipeSvc)
	recipeMaterialsH := handler.NewRecipeMaterialsHandler(recipeMaterialSvc)
	ordersH := handler.NewProductionOrdersHandler(productionSvc)
	batchesH := handler.NewBatchesHandler(batchSvc)
	materialsH := handler.NewMaterialsHandler(materialSvc)
	bucketsH := handler.NewStorageBucketsHandler(storageSvc)
	scanH := handler.NewScanHandler(recipeRepo, orderRepo, rdb,
		time.Duration(cfg.ScanCacheTTLSeconds)*time.Second)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Barcode scan lookup, no auth required (shop-floor scanners)
	r.GET("/v1/scan/:barcode", scanH.Resolve)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: admin, operator, viewer. Declared per-endpoint.
		allRoles := middleware.RequireRole("admin", "operator", "viewer")
		writers := middleware.RequireRole("admin", "operator")
		adminOnly := middleware.RequireRole("admin")

		recipes := v1.Group("/recipes")
		{
			recipes.GET("", allRoles, recipesH.List)
			recipes.GET("/:id", allRoles, recipesH.Get)
			recipes.GET("/export/barcodes", allRoles, recipesH.ExportBarcodes)
			recipes.POST("", writers, recipesH.Create)
			recipes.PUT("/:id", writers, recipesH.Update)
			recipes.DELETE("/:id", adminOnly, recipesH.Delete)
		}

		materials := v1.Group("/recipe_materials")
		{
			materials.GET("", allRoles, recipeMaterialsH.List)
			materials.GET("/recipe/:recipe_id", allRoles, recipeMaterialsH.ListByRecipe)
			materials.POST("", writers, recipeMaterialsH.Upsert)
			materials.PUT("/:id", writers, recipeMaterialsH.Update)
			materials.DELETE("/:id", writers, recipeMaterialsH.Delete)
		}

		orders := v1.Group("/production_orders")
		{
			orders.GET("", allRoles, ordersH.List)
			orders.GET("/export/barcodes", allRoles, ordersH.ExportBarcodes)
			orders.POST("", writers, ordersH.Create)
			orders.PUT("/:id", writers, ordersH.Update)
			orders.PUT("/:id/reject", adminOnly, ordersH.Reject)
			orders.DELETE("/:id", adminOnly, ordersH.Delete)
		}

		batches := v1.Group("/batches")
		{
			batches.GET("", allRoles, batchesH.List)
			batches.POST("", writers, batchesH.Create)
		}

		dispensing := v1.Group("/batch_dispensing")
		{
			dispensing.GET("", allRoles, batchesH.ListDispensings)
			dispensing.POST("", writers, batchesH.CreateDispensing)
		}

		rawMaterials := v1.Group("/materials")
		{
			rawMaterials.GET("", allRoles, materialsH.List)
			rawMaterials.GET("/:id", allRoles, materialsH.Get)
			rawMaterials.POST("", writers, materialsH.Create)
			rawMaterials.PUT("/:id", writers, materialsH.Update)
			rawMaterials.DELETE("/:id", adminOnly, materialsH.Delete)
		}

		buckets := v1.Group("/storage_buckets")
		{
			buckets.GET("", allRoles, bucketsH.List)
			buckets.GET("/:id", allRoles, bucketsH.Get)
			buckets.POST("", writers, bucketsH.Create)
			buckets.PUT("/:id", writers, bucketsH.Update)
			buckets.DELETE("/:id", adminOnly, bucketsH.Delete)
		}

		users := v1.Group("/users", adminOnly)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
