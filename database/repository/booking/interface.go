package bookingRepo

import (
	"tripthrive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access methods for booking records.
type BookingRepository interface {
	Create(b *models.Booking) error
	// GetByUser returns the bookings made by the given customer, newest first.
	GetByUser(userEmail string) ([]models.Booking, error)
	// GetByProvider returns the bookings placed against the given provider,
	// newest first.
	GetByProvider(providerEmail string) ([]models.Booking, error)
	// UpdateStatus sets the status field only. Any string is accepted; there
	// is no transition table.
	UpdateStatus(id, status string) (*mongo.UpdateResult, error)
	// Delete removes a booking and reports how many documents went away.
	Delete(id string) (int64, error)
}
