package controllers

import (
	"time"

	"github.com/demarillacizere/payment-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// TokenController issues the bearer tokens that gate the payments routes
type TokenController struct {
	jwtSecret string
}

// NewTokenController creates a token controller signing with the given secret
func NewTokenController(jwtSecret string) *TokenController {
	return &TokenController{jwtSecret: jwtSecret}
}

// Generate handles GET /v1/token-generator
func (ctl *TokenController) Generate(c *gin.Context) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour * 24).Unix(), // 24 hour expiration
	})

	tokenString, err := token.SignedString([]byte(ctl.jwtSecret))
	if err != nil {
		utils.LogError("Failed to sign token: %v", err)
		utils.Problem(c, "/errors/internal_server_error_upon_token_generation",
			"Internal server error", 500, "", "/v1/token-generator")
		return
	}

	utils.LogInfo("Bearer token issued")
	c.JSON(200, gin.H{"token": tokenString})
}
