package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tripthrive/config"
	"tripthrive/middleware"
	"tripthrive/models"
	"tripthrive/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubCatalogService struct {
	services      []models.Service
	detail        *models.Service
	providerCalls []string
	deleted       int64
	upsertedID    any
}

func (s *stubCatalogService) AddService(svc models.Service) (string, error) {
	return "svc-1", nil
}

func (s *stubCatalogService) ListServices() ([]models.Service, error) {
	return s.services, nil
}

func (s *stubCatalogService) ListProviderServices(providerEmail string) ([]models.Service, error) {
	s.providerCalls = append(s.providerCalls, providerEmail)
	return s.services, nil
}

func (s *stubCatalogService) GetServiceByID(id string) (*models.Service, error) {
	return s.detail, nil
}

func (s *stubCatalogService) UpdateService(id string, svc models.Service) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 0, ModifiedCount: 0, UpsertedID: s.upsertedID}, nil
}

func (s *stubCatalogService) DeleteService(id string) (int64, error) {
	return s.deleted, nil
}

func catalogRouter(stub *stubCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewServiceHandler(stub)
	r := gin.New()
	r.GET("/get-services", h.GetServicesHandler)
	r.GET("/service-details/:id", h.GetServiceDetailsHandler)
	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.POST("/add-service", h.AddServiceHandler)
	protected.PUT("/update-service/:id", h.UpdateServiceHandler)
	protected.DELETE("/delete-service/:id", h.DeleteServiceHandler)
	protected.GET("/get-provider-services", h.GetProviderServicesHandler)
	return r
}

func sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	config.AppConfig.AccessTokenSecret = "test-secret"
	token, err := utils.GenerateToken(map[string]any{"email": email}, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.TokenCookieName, Value: token}
}

func TestGetServicesIsPublic(t *testing.T) {
	stub := &stubCatalogService{services: []models.Service{{ID: "svc-1", Title: "Tour"}}}
	r := catalogRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-services", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "svc-1")
}

func TestServiceDetailsMissingIDAnswersNull(t *testing.T) {
	stub := &stubCatalogService{detail: nil}
	r := catalogRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/service-details/no-such-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
}

func TestAddServiceRequiresAuth(t *testing.T) {
	stub := &stubCatalogService{}
	r := catalogRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add-service", strings.NewReader(`{"title":"Tour"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProviderServicesOwnershipMismatch(t *testing.T) {
	stub := &stubCatalogService{}
	r := catalogRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-provider-services?providerEmail=other@x.com", nil)
	req.AddCookie(sessionCookie(t, "p@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// The store must not be consulted on a mismatch.
	assert.Empty(t, stub.providerCalls)
}

func TestProviderServicesOwnershipMatch(t *testing.T) {
	stub := &stubCatalogService{services: []models.Service{{ID: "svc-1", ProviderEmail: "p@x.com"}}}
	r := catalogRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-provider-services?providerEmail=p@x.com", nil)
	req.AddCookie(sessionCookie(t, "p@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"p@x.com"}, stub.providerCalls)
}

func TestUpdateServiceReportsUpsert(t *testing.T) {
	stub := &stubCatalogService{upsertedID: "svc-9"}
	r := catalogRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/update-service/svc-9", strings.NewReader(`{"title":"New"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, "p@x.com"))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"upsertedId":"svc-9"`)
}

func TestDeleteMissingServiceReportsZero(t *testing.T) {
	stub := &stubCatalogService{deleted: 0}
	r := catalogRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/delete-service/no-such-id", nil)
	req.AddCookie(sessionCookie(t, "p@x.com"))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deletedCount":0`)
}
