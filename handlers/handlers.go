package handlers

import (
	"net/http"

	"tripthrive/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Auth endpoints.
	IssueTokenHandler gin.HandlerFunc
	LogoutHandler     gin.HandlerFunc

	// Catalog endpoints.
	AddServiceHandler          gin.HandlerFunc
	UpdateServiceHandler       gin.HandlerFunc
	DeleteServiceHandler       gin.HandlerFunc
	GetServicesHandler         gin.HandlerFunc
	GetProviderServicesHandler gin.HandlerFunc
	GetServiceDetailsHandler   gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler       gin.HandlerFunc
	GetMyBookingsHandler       gin.HandlerFunc
	GetPendingBookingsHandler  gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
}

// requireOwner enforces that the authenticated identity matches the email
// named by the given query parameter. On mismatch it writes 403 and reports
// false; the caller must not touch the store.
func requireOwner(c *gin.Context, queryKey string) (string, bool) {
	requested := c.Query(queryKey)

	authEmailVal, ok := c.Get(middleware.ContextEmailKey)
	authEmail, _ := authEmailVal.(string)
	if !ok || authEmail == "" || authEmail != requested {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return "", false
	}
	return requested, true
}
