package routes

import (
	"log"
	"os"
	"strconv"
	_ "studio_interiors/docs" // This will be auto-generated
	"studio_interiors/internal/adapter/http/handlers"
	repository2 "studio_interiors/internal/adapter/persistence/repository"
	"studio_interiors/internal/infrastructure/database"
	"studio_interiors/internal/infrastructure/payments"
	"studio_interiors/internal/usecase"
	"studio_interiors/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	rateConfigRepo := repository2.NewRateConfigDynamoRepository(ddb)
	paymentRepo := repository2.NewMilestonePaymentDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, rateConfigRepo)
	rateConfigUseCase := usecase.NewRateConfigUseCase(rateConfigRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewMilestonePaymentUseCase(paymentRepo, estimateRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	rateConfigHandler := handlers.NewRateConfigHandler(rateConfigUseCase)
	paymentHandler := handlers.NewMilestonePaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, rateConfigHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
