package booking

import (
	bookingRepo "tripthrive/database/repository/booking"
	"tripthrive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingService manages customer bookings and their status lifecycle.
type BookingService interface {
	CreateBooking(b models.Booking) (string, error)
	ListUserBookings(userEmail string) ([]models.Booking, error)
	ListProviderBookings(providerEmail string) ([]models.Booking, error)
	UpdateBookingStatus(id, status string) (*mongo.UpdateResult, error)
	DeleteBooking(id string) (int64, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
