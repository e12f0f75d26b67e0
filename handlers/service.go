package handlers

import (
	"net/http"

	"tripthrive/models"
	"tripthrive/services/catalog"
	"tripthrive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the catalog endpoints.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: svc}
}

// AddServiceHandler handles POST /add-service.
func (h *ServiceHandler) AddServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		logger.Error("Invalid add-service request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	insertedID, err := h.Catalog.AddService(svc)
	if err != nil {
		logger.Error("Failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": insertedID})
}

// GetServicesHandler handles GET /get-services: the public catalog, newest first.
func (h *ServiceHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListServices()
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetProviderServicesHandler handles GET /get-provider-services. Owner-scoped:
// the authenticated email must match the providerEmail query parameter.
func (h *ServiceHandler) GetProviderServicesHandler(c *gin.Context) {
	providerEmail, ok := requireOwner(c, "providerEmail")
	if !ok {
		return
	}

	services, err := h.Catalog.ListProviderServices(providerEmail)
	if err != nil {
		utils.GetLogger().Error("Failed to list provider services",
			zap.String("provider", providerEmail), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceDetailsHandler handles GET /service-details/:id. A missing id
// answers 200 with a null body rather than 404.
func (h *ServiceHandler) GetServiceDetailsHandler(c *gin.Context) {
	id := c.Param("id")

	svc, err := h.Catalog.GetServiceByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// UpdateServiceHandler handles PUT /update-service/:id. Missing documents are
// created (upsert), so the result may carry an upsertedId.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		logger.Error("Invalid update-service request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	result, err := h.Catalog.UpdateService(id, svc)
	if err != nil {
		logger.Error("Failed to update service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	resp := gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	}
	if result.UpsertedID != nil {
		resp["upsertedId"] = result.UpsertedID
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteServiceHandler handles DELETE /delete-service/:id. Deleting a missing
// id reports a zero count, not an error.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.Catalog.DeleteService(id)
	if err != nil {
		utils.GetLogger().Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
