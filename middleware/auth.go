package middleware

import (
	"context"
	"log"
	"net/http"

	"tripthrive/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// TokenCookieName is the cookie the session token travels in.
const TokenCookieName = "token"

// ContextEmailKey is where the authenticated identity lands in the Gin context.
const ContextEmailKey = "userEmail"

// JWTAuthMiddleware guards protected routes. It reads the session token from
// the request's cookie store, verifies it, and attaches the decoded email to
// the context. Requests with a missing, malformed, expired or revoked token
// are rejected with 401 before the wrapped handler runs.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		// Reject tokens revoked by logout. When the revocation cache is
		// unreachable the check is skipped rather than failing the request.
		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			key := utils.RevokedTokenPrefix + utils.HashToken(tokenString)
			if _, err := authCache.Get(context.Background(), key).Result(); err == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error reading revocation list: %v. Skipping check.", err)
			}
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}
