package middlewares

import (
	"net/http"
	"strings"

	"authorshaven/config"
	"authorshaven/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token and stores userID/username in the
// request context. Everything behind it can trust those keys.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, username, err := utils.ParseJWT(config.AppConfig.JWT.Secret, token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set("userID", userID)
		ctx.Set("username", username)
		ctx.Next()
	}
}

// OptionalAuthMiddleware resolves the bearer token when one is present but
// never rejects the request. Public reads use it so payloads can carry
// viewer-specific fields for signed-in users.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token != "" && token != header {
			if userID, username, err := utils.ParseJWT(config.AppConfig.JWT.Secret, token); err == nil {
				ctx.Set("userID", userID)
				ctx.Set("username", username)
			}
		}
		ctx.Next()
	}
}
