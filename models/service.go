package models

import "time"

// Service is a provider's catalog listing.
type Service struct {
	ID            string    `bson:"id" json:"id"`
	ProviderEmail string    `bson:"providerEmail" json:"providerEmail"`
	ProviderName  string    `bson:"providerName,omitempty" json:"providerName,omitempty"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	Image         string    `bson:"image,omitempty" json:"image,omitempty"`
	Area          string    `bson:"area,omitempty" json:"area,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
