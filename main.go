package main

import (
	"log"

	"github.com/demarillacizere/payment-api/config"
	"github.com/demarillacizere/payment-api/controllers"
	"github.com/demarillacizere/payment-api/repository"
	"github.com/demarillacizere/payment-api/routes"
	"github.com/demarillacizere/payment-api/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		utils.LogError("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database:", err)
	}

	// Wire repositories and controllers explicitly
	methodsRepo := repository.NewMethodsRepository(db)
	customersRepo := repository.NewCustomersRepository(db)
	paymentsRepo := repository.NewPaymentsRepository(db)

	methodsController := controllers.NewMethodsController(methodsRepo)
	customersController := controllers.NewCustomersController(customersRepo)
	paymentsController := controllers.NewPaymentsController(paymentsRepo, customersRepo, methodsRepo)
	tokenController := controllers.NewTokenController(cfg.JWTSecret)

	// Set up router
	router := routes.SetupRouter(methodsController, customersController, paymentsController, tokenController, cfg.JWTSecret)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
