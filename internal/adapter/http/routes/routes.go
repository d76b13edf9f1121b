package routes

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "splitnest/docs" // generated swagger docs
	"splitnest/internal/adapter/http/handlers"
	"splitnest/internal/adapter/http/middleware"
	"splitnest/internal/adapter/persistence/repository"
	"splitnest/internal/infrastructure/database"
	"splitnest/internal/usecase"
)

var router = gin.New()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Operational endpoints stay outside the identity requirement.
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	slog.Info("server starting", "port", port)
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		slog.Error("failed to start the application", "error", err)
		os.Exit(1)
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	houseRepo := repository.NewHouseDynamoRepository(ddb)
	requestRepo := repository.NewRentRequestDynamoRepository(ddb)
	proposalRepo := repository.NewRentProposalDynamoRepository(ddb)

	houseUseCase := usecase.NewHouseUseCase(houseRepo)
	configUseCase := usecase.NewRentConfigUseCase(requestRepo, houseRepo)
	claimUseCase := usecase.NewClaimUseCase(requestRepo, houseRepo)
	draftUseCase := usecase.NewDraftUseCase(proposalRepo, requestRepo, houseRepo)
	submissionUseCase := usecase.NewSubmissionUseCase(proposalRepo, requestRepo, houseRepo)
	approvalUseCase := usecase.NewApprovalUseCase(proposalRepo, requestRepo, houseRepo)

	houseHandler := handlers.NewHouseHandler(houseUseCase)
	requestHandler := handlers.NewRentRequestHandler(configUseCase, claimUseCase)
	proposalHandler := handlers.NewRentProposalHandler(draftUseCase, submissionUseCase)
	approvalHandler := handlers.NewRentApprovalHandler(approvalUseCase)

	api := router.Group("/api", middleware.Identity())
	addRentRoutes(api, houseHandler, requestHandler, proposalHandler, approvalHandler)
}

func setMiddlewares() {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("recovered from panic", "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
