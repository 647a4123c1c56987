package main

import (
	"context"
	"log"
	"os"

	"fudge-kettle/config"
	"fudge-kettle/controllers"
	_ "fudge-kettle/docs"
	"fudge-kettle/events"
	"fudge-kettle/middleware"
	"fudge-kettle/repositories"
	"fudge-kettle/routes"
	"fudge-kettle/services"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	productRepo := repositories.NewProductRepository()
	orderRepo := repositories.NewOrderRepository()

	var cartStore services.CartStore
	if config.RedisClient != nil {
		cartStore = services.NewRedisCartStore(config.RedisClient)
	} else {
		log.Println("Redis unavailable, carts will be held in process memory")
		cartStore = services.NewMemoryCartStore()
	}

	var emailSender services.EmailSender
	if s := services.NewGomailSender(config.AppConfig); s != nil {
		emailSender = s
	}
	var smsSender services.SMSSender
	if s := services.NewTwilioSender(config.AppConfig); s != nil {
		smsSender = s
	}
	notifier := services.NewNotificationService(emailSender, smsSender, config.AppConfig.IsProduction())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var publisher events.Publisher
	if broker := config.AppConfig.KafkaBroker; broker != "" {
		kafkaPublisher := events.NewKafkaPublisher(broker, config.AppConfig.KafkaTopic)
		defer kafkaPublisher.Close()
		consumer := events.NewKafkaConsumer(broker, config.AppConfig.KafkaTopic,
			"fudge-kettle-notifications", notifier.HandleOrderCreated)
		defer consumer.Close()
		go consumer.Start(ctx)
		publisher = kafkaPublisher
		log.Printf("Order events published to Kafka topic %q", config.AppConfig.KafkaTopic)
	} else {
		bus := events.NewChannelBus(notifier.HandleOrderCreated)
		go bus.Start(ctx)
		publisher = bus
		log.Println("Kafka not configured, dispatching order events in-process")
	}

	cartService := services.NewCartService(cartStore, productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, cartService, publisher)
	productService := services.NewProductService(productRepo)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, &routes.Controllers{
		Auth:    controllers.NewAuthController(),
		Product: controllers.NewProductController(productService),
		Cart:    controllers.NewCartController(cartService),
		Order:   controllers.NewOrderController(orderService),
		Admin:   controllers.NewAdminController(productService, orderService),
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
