package middleware

import (
	"errors"
	"strings"

	"github.com/demarillacizere/payment-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AuthMiddleware validates the bearer token on protected route groups.
// The secret is injected at wiring time; requests without a valid token
// are rejected with a 401 envelope.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogInfo("Missing Authorization header on %s", c.Request.URL.Path)
			abortUnauthorized(c)
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Verify signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			utils.LogInfo("Invalid token on %s: %v", c.Request.URL.Path, err)
			abortUnauthorized(c)
			return
		}

		if !token.Valid {
			utils.LogInfo("Token validation failed on %s", c.Request.URL.Path)
			abortUnauthorized(c)
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(401, utils.Envelope{
		Type:     "/errors/unauthorized",
		Title:    "Unauthorized",
		Status:   401,
		Detail:   "A valid bearer token is required.",
		Instance: c.Request.URL.Path,
	})
}
