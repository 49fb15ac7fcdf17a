package routes

import (
	"log"

	_ "komoju_checkout/docs"
	"komoju_checkout/internal/adapter/http/handlers"
	"komoju_checkout/internal/config"
	"komoju_checkout/internal/infrastructure/payments"
	"komoju_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cfg := getRoutes()

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() *config.Config {
	// Secrets are required; a misconfigured process must not come up and
	// serve unauthenticated gateway calls or unverifiable webhooks.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	gateway, err := payments.NewKomojuGateway(cfg)
	if err != nil {
		log.Fatalf("KOMOJU gateway not configured: %v", err)
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(gateway, cfg.BaseURL)
	sessionStatusUseCase := usecase.NewSessionStatusUseCase(gateway)
	historyUseCase := usecase.NewPaymentHistoryUseCase(gateway)
	webhookUseCase := usecase.NewWebhookUseCase(cfg.WebhookSecret)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	returnHandler := handlers.NewReturnHandler(sessionStatusUseCase)
	historyHandler := handlers.NewPaymentHistoryHandler(historyUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	addPingRoutes(router)
	addStorefrontRoutes(router, checkoutHandler, returnHandler, historyHandler, webhookHandler)

	return cfg
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
