package handlers

import (
	"context"
	"net/http"
	"time"

	"tripthrive/config"
	"tripthrive/middleware"
	"tripthrive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler issues and revokes session tokens.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// IssueTokenHandler handles POST /jwt. It signs the supplied identity claims
// into a session token and sets it as the auth cookie.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var claims map[string]any
	if err := c.ShouldBindJSON(&claims); err != nil {
		logger.Error("Invalid token request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := utils.GenerateToken(claims, utils.SessionTokenTTL)
	if err != nil {
		logger.Error("Failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	setAuthCookie(c, token, int(utils.SessionTokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler handles POST /logout. It clears the auth cookie and parks the
// presented token's hash on the revocation list until the token would have
// expired anyway.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if tokenString, err := c.Cookie(middleware.TokenCookieName); err == nil && tokenString != "" {
		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			key := utils.RevokedTokenPrefix + utils.HashToken(tokenString)
			ttl := remainingTokenTTL(tokenString)
			if err := authCache.Set(context.Background(), key, "1", ttl).Err(); err != nil {
				logger.Warn("Failed to record revoked token", zap.Error(err))
			}
		}
	}

	setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// setAuthCookie writes the session cookie. Cross-site credentials need
// SameSite=None with the Secure flag, which only works over HTTPS, so the
// development build keeps SameSite=Lax without Secure.
func setAuthCookie(c *gin.Context, token string, maxAge int) {
	secure := config.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", secure, true)
}

// remainingTokenTTL reports how long a token stays valid. Tokens whose expiry
// cannot be read get a short hold only; they fail verification regardless.
func remainingTokenTTL(tokenString string) time.Duration {
	claims, err := utils.ExtractClaims(tokenString)
	if err != nil {
		return time.Minute
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Minute
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining <= 0 {
		return time.Minute
	}
	return remaining
}
