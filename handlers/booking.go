package handlers

import (
	"net/http"

	"tripthrive/models"
	"tripthrive/services/booking"
	"tripthrive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// CreateBookingHandler handles POST /service-booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		logger.Error("Invalid service-booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	insertedID, err := h.Bookings.CreateBooking(b)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": insertedID})
}

// GetMyBookingsHandler handles GET /get-my-booking. Owner-scoped: the
// authenticated email must match the userEmail query parameter.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	userEmail, ok := requireOwner(c, "userEmail")
	if !ok {
		return
	}

	bookings, err := h.Bookings.ListUserBookings(userEmail)
	if err != nil {
		utils.GetLogger().Error("Failed to list user bookings",
			zap.String("user", userEmail), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetPendingBookingsHandler handles GET /get-pending-booking. Owner-scoped:
// the authenticated email must match the providerEmail query parameter.
func (h *BookingHandler) GetPendingBookingsHandler(c *gin.Context) {
	providerEmail, ok := requireOwner(c, "providerEmail")
	if !ok {
		return
	}

	bookings, err := h.Bookings.ListProviderBookings(providerEmail)
	if err != nil {
		utils.GetLogger().Error("Failed to list provider bookings",
			zap.String("provider", providerEmail), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBookingHandler handles DELETE /delete-my-booking/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.Bookings.DeleteBooking(id)
	if err != nil {
		utils.GetLogger().Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

// UpdateBookingStatusHandler handles PATCH /update-service-status/:id.
// It sets the status field only; any string value is accepted.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		UpdateStatus string `json:"updateStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status update request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	result, err := h.Bookings.UpdateBookingStatus(id, req.UpdateStatus)
	if err != nil {
		logger.Error("Failed to update booking status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}
