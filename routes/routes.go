package routes

import (
	"github.com/YibestBelay/shegaCafe/configs"
	"github.com/YibestBelay/shegaCafe/controllers"
	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/middlewares"
	"github.com/YibestBelay/shegaCafe/pkg/imagestore"
	"github.com/YibestBelay/shegaCafe/repository"
	"github.com/YibestBelay/shegaCafe/services"
	"github.com/YibestBelay/shegaCafe/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, images imagestore.Store, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	menuSvc := services.NewMenuService(menuRepo, images)
	orderSvc := services.NewOrderService(db, orderRepo)
	reportSvc := services.NewReportService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, images)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	adminCtrl := controllers.NewAdminController(userSvc, orderSvc, reportSvc, hub)

	secret := cfg.JWTSecret

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/external", authCtrl.ExternalLogin)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// Menu reads accept anonymous callers; staff tokens widen visibility
	r.GET("/menu", middlewares.OptionalAuth(secret), menuCtrl.List)
	r.GET("/menu/:id", middlewares.OptionalAuth(secret), menuCtrl.Get)

	staffMenu := r.Group("/menu", middlewares.AuthMiddleware(secret, entity.RoleChef, entity.RoleAdmin))
	{
		staffMenu.POST("", menuCtrl.Create)
		staffMenu.POST("/images", menuCtrl.UploadImage)
		staffMenu.PATCH("/:id", menuCtrl.Update)
		staffMenu.PATCH("/:id/availability", menuCtrl.ToggleAvailability)
		staffMenu.DELETE("/:id", menuCtrl.Delete)
	}

	// Order creation is open to guests, reads are public
	r.POST("/orders", middlewares.OptionalAuth(secret), orderCtrl.Create)
	r.GET("/orders", orderCtrl.List)
	r.PATCH("/orders/:id/status", middlewares.AuthMiddleware(secret), orderCtrl.UpdateStatus)
	r.PATCH("/orders/:id/payment", middlewares.AuthMiddleware(secret), orderCtrl.UpdatePayment)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		admin.GET("/users", adminCtrl.ListUsers)
		admin.POST("/users", adminCtrl.SaveUser)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
		admin.DELETE("/orders/:id", adminCtrl.DeleteOrder)
		admin.POST("/orders/clear-completed", adminCtrl.ClearCompletedOrders)
		admin.GET("/reports/sales", adminCtrl.SalesReport)
	}

	// Live order feed
	r.GET("/ws/orders", hub.Handle)
}
