package routes

import (
	"context"
	"log"
	"strconv"

	_ "checkout_pro/docs" // This will be auto-generated
	"checkout_pro/internal/adapter/http/handlers"
	repository2 "checkout_pro/internal/adapter/persistence/repository"
	"checkout_pro/internal/config"
	"checkout_pro/internal/infrastructure/database"
	"checkout_pro/internal/infrastructure/payments"
	"checkout_pro/internal/usecase"
	"checkout_pro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.HTTP.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	credentialRepo := repository2.NewCredentialDynamoRepository(ddb)
	credentialUseCase := usecase.NewCredentialUseCase(credentialRepo)
	bootstrapCredential(credentialUseCase, cfg)

	planUseCase := usecase.NewPlanUseCase()

	gatewayFactory := func(accessToken string) (interfaces.IPaymentGateway, error) {
		return payments.NewMercadoPagoGateway(accessToken)
	}

	checkoutUseCase := usecase.NewCheckoutSessionUseCase(
		planUseCase,
		credentialUseCase,
		gatewayFactory,
		usecase.CheckoutConfig{
			PollInterval:    cfg.Checkout.PollInterval,
			PollMaxAttempts: cfg.Checkout.PollMaxAttempts,
		},
		func(sessionID, paymentID string) {
			log.Printf("[checkout][routes] plan activated session_id=%s payment_id=%s", sessionID, paymentID)
		},
	)

	planHandler := handlers.NewPlanHandler(planUseCase)
	credentialHandler := handlers.NewCredentialHandler(credentialUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlanRoutes(v1, planHandler)
	addCredentialRoutes(v1, credentialHandler)
	addCheckoutRoutes(v1, checkoutHandler)
}

// bootstrapCredential seeds the credential store from the environment when the
// store is empty, so a fresh deployment can take payments without a manual
// PUT /v1/credentials.
func bootstrapCredential(credentials usecase.ICredentialUseCase, cfg config.Config) {
	if cfg.MercadoPago.AccessToken == "" {
		return
	}
	ctx := context.Background()
	if _, err := credentials.Current(ctx); err == nil {
		return
	}
	if _, err := credentials.Configure(ctx, cfg.MercadoPago.AccessToken); err != nil {
		log.Printf("[credential][routes] bootstrap from environment failed: %v", err)
		return
	}
	log.Printf("[credential][routes] credential bootstrapped from environment")
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
