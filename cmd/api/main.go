package main

import (
	_ "komoju_checkout/docs"
	"komoju_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           KOMOJU Sample Checkout API
// @version         1.0
// @description     Sample storefront backend: hosted payment sessions, payment history and webhook ingestion via KOMOJU.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
