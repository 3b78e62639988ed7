package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/config"
	"brodverk-backend/internal/database"
	"brodverk-backend/internal/handlers"
	"brodverk-backend/internal/logger"
	"brodverk-backend/internal/middleware"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Development)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.HealthCheck("/health"))
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret, log)
	employeeHandler := handlers.NewEmployeeHandler(db)
	productHandler := handlers.NewProductHandler(db)
	materialHandler := handlers.NewMaterialHandler(db)
	orderHandler := handlers.NewOrderHandler(db, log)
	discountHandler := handlers.NewDiscountHandler(db, cfg.CurrencyUnit)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), authHandler.Me)
	}

	// Staff routes: any authenticated console account.
	staff := r.Group("/api/admin")
	staff.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		staff.GET("/products", productHandler.List)
		staff.GET("/products/search", productHandler.Search)
		staff.GET("/products/:id", productHandler.Get)

		staff.GET("/materials", materialHandler.List)
		staff.GET("/materials/:id", materialHandler.Get)

		staff.GET("/orders", orderHandler.List)
		staff.GET("/orders/:id", orderHandler.Get)
		staff.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
		staff.GET("/orders/:id/history", orderHandler.StatusHistory)

		staff.GET("/discounts", discountHandler.List)
		staff.GET("/discounts/:id", discountHandler.Get)
		staff.GET("/discounts/:id/summary", discountHandler.Summary)
	}

	// Admin routes: mutations and account management.
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminMiddleware(cfg.JWTSecret))
	{
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.POST("/materials", materialHandler.Create)
		admin.PUT("/materials/:id", materialHandler.Update)
		admin.DELETE("/materials/:id", materialHandler.Delete)

		admin.POST("/discounts", discountHandler.Create)
		admin.PUT("/discounts/:id", discountHandler.Update)
		admin.DELETE("/discounts/:id", discountHandler.Delete)

		admin.GET("/users", employeeHandler.List)
		admin.GET("/users/:id", employeeHandler.Get)
		admin.POST("/users", employeeHandler.Create)
		admin.PUT("/users/:id", employeeHandler.Update)
		admin.DELETE("/users/:id", employeeHandler.Delete)
	}

	log.Infow("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
