package booking

import (
	"testing"

	"tripthrive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubBookingRepo struct {
	created      []models.Booking
	byUser       map[string][]models.Booking
	byProvider   map[string][]models.Booking
	statusID     string
	statusValue  string
	deleteResult int64
}

func (s *stubBookingRepo) Create(b *models.Booking) error {
	s.created = append(s.created, *b)
	return nil
}

func (s *stubBookingRepo) GetByUser(userEmail string) ([]models.Booking, error) {
	return s.byUser[userEmail], nil
}

func (s *stubBookingRepo) GetByProvider(providerEmail string) ([]models.Booking, error) {
	return s.byProvider[providerEmail], nil
}

func (s *stubBookingRepo) UpdateStatus(id, status string) (*mongo.UpdateResult, error) {
	s.statusID = id
	s.statusValue = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubBookingRepo) Delete(id string) (int64, error) {
	return s.deleteResult, nil
}

func TestCreateBookingGeneratesIDAndDefaultsStatus(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	id, err := svc.CreateBooking(models.Booking{
		UserEmail:     "a@x.com",
		ProviderEmail: "p@x.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.created, 1)
	assert.Equal(t, id, repo.created[0].ID)
	assert.Equal(t, models.BookingStatusPending, repo.created[0].Status)
}

func TestCreateBookingKeepsSuppliedStatus(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateBooking(models.Booking{
		UserEmail: "a@x.com",
		Status:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", repo.created[0].Status)
}

func TestUpdateBookingStatusAcceptsAnyString(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	result, err := svc.UpdateBookingStatus("b-1", "on-my-way")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)
	assert.Equal(t, "b-1", repo.statusID)
	assert.Equal(t, "on-my-way", repo.statusValue)
}

func TestListUserBookingsScopedToEmail(t *testing.T) {
	repo := &stubBookingRepo{
		byUser: map[string][]models.Booking{
			"a@x.com": {{ID: "b-1", UserEmail: "a@x.com"}},
			"b@x.com": {{ID: "b-2", UserEmail: "b@x.com"}},
		},
	}
	svc := &DefaultBookingService{Repo: repo}

	bookings, err := svc.ListUserBookings("a@x.com")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b-1", bookings[0].ID)
}

func TestDeleteMissingBookingReportsZero(t *testing.T) {
	repo := &stubBookingRepo{deleteResult: 0}
	svc := &DefaultBookingService{Repo: repo}

	deleted, err := svc.DeleteBooking("no-such-id")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
