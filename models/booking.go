package models

import "time"

// Booking status values set by convention. Status is an open string field;
// any value a caller supplies via the status update endpoint is stored as-is.
const (
	BookingStatusPending  = "pending"
	BookingStatusAccepted = "accepted"
	BookingStatusRejected = "rejected"
)

// Booking is a customer's reservation of a provider's service. Descriptive
// fields are copied from the service at booking time so the record survives
// later edits to the listing.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	UserEmail     string    `bson:"userEmail" json:"userEmail"`
	ProviderEmail string    `bson:"providerEmail" json:"providerEmail"`
	Status        string    `bson:"status" json:"status"`
	Title         string    `bson:"title,omitempty" json:"title,omitempty"`
	Price         float64   `bson:"price,omitempty" json:"price,omitempty"`
	Image         string    `bson:"image,omitempty" json:"image,omitempty"`
	Area          string    `bson:"area,omitempty" json:"area,omitempty"`
	Date          string    `bson:"date,omitempty" json:"date,omitempty"`
	Instruction   string    `bson:"instruction,omitempty" json:"instruction,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
