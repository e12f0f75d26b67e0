package catalog

import (
	serviceRepo "tripthrive/database/repository/service"
	"tripthrive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogService manages provider listings.
type CatalogService interface {
	AddService(svc models.Service) (string, error)
	ListServices() ([]models.Service, error)
	ListProviderServices(providerEmail string) ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	UpdateService(id string, svc models.Service) (*mongo.UpdateResult, error)
	DeleteService(id string) (int64, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
