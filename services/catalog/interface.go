package catalog

import (
	catalogRepo "glowdesk/database/repository/catalog"

	"glowdesk/models"
)

// CatalogService manages the service and promotion reference data consumed
// by the scheduling core.
type CatalogService interface {
	GetService(id string) (*models.Service, error)
	GetPromotion(id string) (*models.Promotion, error)
	ListServices() ([]models.Service, error)
	ListPromotions() ([]models.Promotion, error)
	// ListActivePromotions returns promotions whose validity window contains now.
	ListActivePromotions() ([]models.Promotion, error)
	CreateService(svc *models.Service) (*models.Service, error)
	UpdateService(svc *models.Service) (*models.Service, error)
	DeleteService(id string) error
	CreatePromotion(promo *models.Promotion) (*models.Promotion, error)
	UpdatePromotion(promo *models.Promotion) (*models.Promotion, error)
	DeletePromotion(id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}
