package serviceRepo

import (
	"tripthrive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository defines data access methods for catalog listings.
type ServiceRepository interface {
	Create(svc *models.Service) error
	// GetAll returns every listing, newest-inserted first.
	GetAll() ([]models.Service, error)
	GetByProvider(providerEmail string) ([]models.Service, error)
	// GetByID returns (nil, nil) when no listing matches.
	GetByID(id string) (*models.Service, error)
	// Update applies a partial $set with upsert semantics: a missing
	// document is created rather than rejected.
	Update(id string, fields bson.M) (*mongo.UpdateResult, error)
	// Delete removes a listing and reports how many documents went away.
	Delete(id string) (int64, error)
}
