package routes

import (
	"github.com/demarillacizere/payment-api/controllers"
	"github.com/demarillacizere/payment-api/middleware"
	"github.com/demarillacizere/payment-api/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes.
// Controllers are passed in fully constructed; the router holds no
// state of its own beyond the JWT secret handed to the auth middleware.
func SetupRouter(
	methods *controllers.MethodsController,
	customers *controllers.CustomersController,
	payments *controllers.PaymentsController,
	tokens *controllers.TokenController,
	jwtSecret string,
) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// API version group
	api := router.Group("/v1")
	{
		api.GET("", func(c *gin.Context) {
			c.String(200, "Welcome to the payment app")
		})
		api.GET("/token-generator", tokens.Generate)

		methodsGroup := api.Group("/methods")
		{
			methodsGroup.GET("", methods.Index)
			methodsGroup.POST("", methods.Create)
			methodsGroup.PUT("/:id", methods.Update)
			methodsGroup.DELETE("/:id", methods.Remove)
			methodsGroup.GET("/deactivate/:id", methods.Deactivate)
			methodsGroup.GET("/reactivate/:id", methods.Reactivate)
		}

		customersGroup := api.Group("/customers")
		{
			customersGroup.GET("", customers.Index)
			customersGroup.POST("", customers.Create)
			customersGroup.PUT("/:id", customers.Update)
			customersGroup.DELETE("/:id", customers.Remove)
			customersGroup.GET("/deactivate/:id", customers.Deactivate)
			customersGroup.GET("/reactivate/:id", customers.Reactivate)
		}

		// Payment transactions require a bearer token
		paymentsGroup := api.Group("/payments")
		paymentsGroup.Use(middleware.AuthMiddleware(jwtSecret))
		{
			paymentsGroup.GET("", payments.Index)
			paymentsGroup.POST("", payments.Create)
			paymentsGroup.PUT("/:id", payments.Update)
			paymentsGroup.DELETE("/:id", payments.Remove)
		}
	}

	return router
}
