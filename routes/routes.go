package routes

import (
	"github.com/AbuBakkarSiddique007/bhojonbox-server/configs"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/controllers"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/middlewares"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/cartbus"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/metrics"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/repository"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/services"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, bus *cartbus.Bus, log *logrus.Logger, m *metrics.Metrics) {
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	db := configs.DB()

	// Repositories
	cartStore := repository.NewGormCartStore(db, log)
	orderRepo := repository.NewOrderRepository(db)
	mealRepo := repository.NewMealRepository(db)
	providerRepo := repository.NewProviderRepository(db)

	// Services
	cartSvc := services.NewCartService(cartStore, bus, log, m)
	orderSvc := services.NewOrderService(db, orderRepo, mealRepo, providerRepo, cartSvc, log, m)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	cartCtrl := controllers.NewCartController(cartSvc, mealRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	mealCtrl := controllers.NewMealController(db, mealRepo, providerRepo)
	providerCtrl := controllers.NewProviderController(db, providerRepo)
	categoryCtrl := controllers.NewCategoryController(db)
	reviewCtrl := controllers.NewReviewController(db)
	adminCtrl := controllers.NewAdminController(db, orderRepo)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	customerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer)
	providerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleProvider, entity.RoleAdmin)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/me", auth, authCtrl.Me)
		a.PATCH("/me", auth, authCtrl.UpdateMe)
	}

	// Catalog (public)
	api.GET("/meals", mealCtrl.List)
	api.GET("/meals/:id", mealCtrl.Detail)
	api.GET("/providers", providerCtrl.List)
	api.GET("/providers/:id", providerCtrl.Detail)
	api.GET("/categories", categoryCtrl.List)
	api.GET("/reviews/meal/:mealId", reviewCtrl.ByMeal)

	// Cart
	cart := api.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:mealId", cartCtrl.UpdateQty)
		cart.DELETE("/items/:mealId", cartCtrl.Remove)
		cart.DELETE("/provider/:providerId", cartCtrl.ClearProvider)
	}

	// Orders
	orders := api.Group("/orders")
	{
		orders.POST("", customerOnly, orderCtrl.Create)
		orders.GET("/my-orders", auth, orderCtrl.MyOrders)
		orders.GET("/provider/orders", providerOnly, orderCtrl.ProviderOrders)
		orders.GET("/:id", auth, orderCtrl.Detail)
		orders.PATCH("/:id/cancel", customerOnly, orderCtrl.Cancel)
		orders.PATCH("/:id/status", providerOnly, orderCtrl.UpdateStatus)
	}

	// Provider dashboard
	api.GET("/meals/provider/my-meals", providerOnly, mealCtrl.MyMeals)
	api.POST("/meals", providerOnly, mealCtrl.Create)
	api.PATCH("/meals/:id", providerOnly, mealCtrl.Update)
	api.DELETE("/meals/:id", providerOnly, mealCtrl.Delete)
	api.PATCH("/providers/me", providerOnly, providerCtrl.UpdateMe)

	// Reviews
	api.POST("/reviews", customerOnly, reviewCtrl.Create)
	api.GET("/reviews/user/my-reviews", auth, reviewCtrl.MyReviews)

	// Admin
	admin := api.Group("/admin", adminOnly)
	{
		admin.GET("/users", adminCtrl.Users)
		admin.GET("/orders", adminCtrl.Orders)
		admin.POST("/categories", categoryCtrl.Create)
		admin.PUT("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)
	}

	// Cart change push, one socket per tab
	hub := ws.NewCartHub(bus, log)
	go hub.Run()
	r.GET("/ws/cart", auth, hub.HandleWebSocket)
}
