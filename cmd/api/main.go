package main

import (
	_ "splitnest/docs"
	"splitnest/internal/adapter/http/routes"
	"splitnest/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Splitnest Rent Allocation API
// @version         1.0
// @description     Rent allocation proposal workflow (claim, draft, submit, approve/decline) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Authenticated house-member identity, injected by the API gateway.

func main() {
	logging.Setup()
	routes.Run()
}
