package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catRepo, menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	groupSvc := services.NewGroupService(userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catCtrl := controllers.NewCategoryController(catalogSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	groupCtrl := controllers.NewGroupController(groupSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)
	manager := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleManager, entity.RoleAdmin)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Catalog — reads open, mutations manager-only
	r.GET("/categories", catCtrl.List)
	r.GET("/categories/:id", catCtrl.Detail)
	r.POST("/categories", manager, catCtrl.Create)
	r.PUT("/categories/:id", manager, catCtrl.Update)
	r.PATCH("/categories/:id", manager, catCtrl.Update)
	r.DELETE("/categories/:id", manager, catCtrl.Delete)

	r.GET("/menu-items", menuCtrl.List)
	r.GET("/menu-items/counts", menuCtrl.Counts)
	r.GET("/menu-items/:id", menuCtrl.Detail)
	r.POST("/menu-items", manager, menuCtrl.Create)
	r.PUT("/menu-items/:id", manager, menuCtrl.Update)
	r.DELETE("/menu-items/:id", manager, menuCtrl.Delete)

	// Cart — always scoped to the authenticated caller
	cart := r.Group("/cart/menu-items", authed)
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("", cartCtrl.Clear)
		cart.GET("/:id", cartCtrl.LineDetail)
		cart.PUT("/:id", cartCtrl.UpdateLine)
		cart.DELETE("/:id", cartCtrl.RemoveLine)
	}

	// Orders — listing is role-partitioned, updates role-gated in the service
	orders := r.Group("/orders", authed)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Checkout)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id", orderCtrl.Update)
	}

	// Group membership — manager group is admin-only, delivery crew may be
	// managed by managers too
	mgrGroup := r.Group("/groups/manager/users", admin)
	{
		mgrGroup.GET("", groupCtrl.ListManagers)
		mgrGroup.POST("", groupCtrl.AddManager)
		mgrGroup.DELETE("", groupCtrl.RemoveManager)
	}
	crewGroup := r.Group("/groups/delivery-crew/users", manager)
	{
		crewGroup.GET("", groupCtrl.ListDeliveryCrew)
		crewGroup.POST("", groupCtrl.AddDeliveryCrew)
		crewGroup.DELETE("", groupCtrl.RemoveDeliveryCrew)
	}
}
