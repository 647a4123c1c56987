package routes

import (
	"fudge-kettle/config"
	"fudge-kettle/controllers"
	"fudge-kettle/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Admin   *controllers.AdminController
}

func SetupRoutes(router *gin.Engine, ctrl *Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Stateless API surface.
	api := router.Group("/api")
	{
		api.GET("/products", ctrl.Product.ListProducts)
		api.GET("/products/:id", ctrl.Product.GetProductByID)
		api.GET("/orders", ctrl.Order.ListOrders)
		api.POST("/orders", ctrl.Order.CreateOrder)
	}

	// Session-backed shop flow, mirroring the storefront pages.
	shop := router.Group("/shop")
	shop.Use(middleware.SessionMiddleware())
	{
		shop.GET("/products", ctrl.Product.ListProducts)
		shop.GET("/products/:id", ctrl.Product.GetProductByID)
		shop.GET("/cart", ctrl.Cart.GetCart)
		shop.POST("/cart/add/:id", ctrl.Cart.AddToCart)
		shop.POST("/orders", ctrl.Order.Checkout)
	}

	router.POST("/admin/login", ctrl.Auth.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", ctrl.Admin.CreateProduct)
		admin.PATCH("/products/:id", ctrl.Admin.UpdateProduct)
		admin.POST("/products/:id/image", ctrl.Admin.UploadProductImage)
		admin.DELETE("/products/:id", ctrl.Admin.DeleteProduct)

		admin.GET("/orders", ctrl.Order.ListOrders)
		admin.GET("/orders/:id", ctrl.Admin.GetOrderByID)
		admin.POST("/orders/mark-paid", ctrl.Admin.MarkOrdersPaid)
		admin.DELETE("/orders/:id", ctrl.Admin.DeleteOrder)
	}

	// Uploaded media is only served by the app itself outside production.
	if !config.AppConfig.IsProduction() {
		router.Static("/uploads", config.AppConfig.UploadDir)
	}
}
