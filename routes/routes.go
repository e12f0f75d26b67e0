package routes

import (
	"net/http"
	"time"

	"tripthrive/config"
	"tripthrive/handlers"
	"tripthrive/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers session token endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.IssueTokenHandler)
	r.POST("/logout", hb.LogoutHandler)
}

// RegisterServiceRoutes registers catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Public catalog endpoints.
	r.GET("/get-services", hb.GetServicesHandler)
	r.GET("/service-details/:id", hb.GetServiceDetailsHandler)

	// Endpoints that modify catalog data require authentication.
	// TODO: update/delete accept any authenticated caller; verify the caller
	// owns the service before allowing the write.
	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.POST("/add-service", hb.AddServiceHandler)
	protected.PUT("/update-service/:id", hb.UpdateServiceHandler)
	protected.DELETE("/delete-service/:id", hb.DeleteServiceHandler)
	protected.GET("/get-provider-services", hb.GetProviderServicesHandler)
}

// RegisterBookingRoutes registers booking endpoints. All of them require
// authentication; the owner-scoped reads additionally check the queried email
// against the authenticated identity inside the handler.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.POST("/service-booking", hb.CreateBookingHandler)
	protected.GET("/get-my-booking", hb.GetMyBookingsHandler)
	protected.GET("/get-pending-booking", hb.GetPendingBookingsHandler)
	protected.DELETE("/delete-my-booking/:id", hb.DeleteBookingHandler)
	protected.PATCH("/update-service-status/:id", hb.UpdateBookingStatusHandler)
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "My server is running...")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Cookie auth needs credentialed CORS, which rules out a wildcard origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
