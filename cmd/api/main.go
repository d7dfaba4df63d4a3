package main

import (
	_ "bidright/docs"
	"bidright/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           BidRight API
// @version         1.0
// @description     Project estimates, pricing analytics and Pro subscriptions for freelancers.

// @contact.name   BidRight Support
// @contact.url    https://bidright.app

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
