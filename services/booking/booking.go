package booking

import (
	"tripthrive/models"
	"tripthrive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateBooking stores a new booking and returns its generated id.
// Bookings arriving without a status start out pending so the provider's
// pending view picks them up.
func (s *DefaultBookingService) CreateBooking(b models.Booking) (string, error) {
	logger := utils.GetLogger()

	b.ID = uuid.NewString()
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	if err := s.Repo.Create(&b); err != nil {
		return "", err
	}

	logger.Debug("Booking created",
		zap.String("id", b.ID),
		zap.String("user", b.UserEmail),
		zap.String("provider", b.ProviderEmail))
	return b.ID, nil
}

// ListUserBookings returns the bookings made by the given customer.
func (s *DefaultBookingService) ListUserBookings(userEmail string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userEmail)
}

// ListProviderBookings returns the bookings placed against the given provider.
func (s *DefaultBookingService) ListProviderBookings(providerEmail string) ([]models.Booking, error) {
	return s.Repo.GetByProvider(providerEmail)
}

// UpdateBookingStatus sets a booking's status. Status is an open string
// field; the value is stored as supplied.
func (s *DefaultBookingService) UpdateBookingStatus(id, status string) (*mongo.UpdateResult, error) {
	return s.Repo.UpdateStatus(id, status)
}

// DeleteBooking removes a booking, returning the deleted count.
func (s *DefaultBookingService) DeleteBooking(id string) (int64, error) {
	return s.Repo.Delete(id)
}
