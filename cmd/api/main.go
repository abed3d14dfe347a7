package main

import (
	_ "clicknova_admin/docs"
	"clicknova_admin/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Click Nova Admin API
// @version         1.0
// @description     Business administration backend (leads, customers, employees, quotations) backed by DynamoDB.

// @contact.name   Click Nova
// @contact.email  support@clicknova.in

// @host localhost:8081

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
