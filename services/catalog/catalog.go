package catalog

import (
	"tripthrive/models"
	"tripthrive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AddService stores a new listing and returns its generated id.
func (s *DefaultCatalogService) AddService(svc models.Service) (string, error) {
	logger := utils.GetLogger()

	svc.ID = uuid.NewString()
	if err := s.Repo.Create(&svc); err != nil {
		return "", err
	}

	logger.Debug("Service created", zap.String("id", svc.ID), zap.String("provider", svc.ProviderEmail))
	return svc.ID, nil
}

// ListServices returns the public catalog, newest first.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	return s.Repo.GetAll()
}

// ListProviderServices returns the listings owned by the given provider.
func (s *DefaultCatalogService) ListProviderServices(providerEmail string) ([]models.Service, error) {
	return s.Repo.GetByProvider(providerEmail)
}

// GetServiceByID returns a single listing, or nil when none matches.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}

// UpdateService applies the non-empty fields of svc as a partial update.
// Zero values count as absent: this path cannot clear a field or set price
// to 0. A missing document is created (upsert), matching the store contract.
func (s *DefaultCatalogService) UpdateService(id string, svc models.Service) (*mongo.UpdateResult, error) {
	updateFields := bson.M{}

	if svc.ProviderEmail != "" {
		updateFields["providerEmail"] = svc.ProviderEmail
	}
	if svc.ProviderName != "" {
		updateFields["providerName"] = svc.ProviderName
	}
	if svc.Title != "" {
		updateFields["title"] = svc.Title
	}
	if svc.Description != "" {
		updateFields["description"] = svc.Description
	}
	if svc.Price != 0 {
		updateFields["price"] = svc.Price
	}
	if svc.Image != "" {
		updateFields["image"] = svc.Image
	}
	if svc.Area != "" {
		updateFields["area"] = svc.Area
	}

	return s.Repo.Update(id, updateFields)
}

// DeleteService removes a listing, returning the deleted count.
func (s *DefaultCatalogService) DeleteService(id string) (int64, error) {
	return s.Repo.Delete(id)
}
