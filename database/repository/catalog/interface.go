package catalogRepo

import "glowdesk/models"

// CatalogRepository defines methods for service and promotion data access.
// GetService/GetPromotion return (nil, nil) on a miss rather than an error;
// the scheduling core substitutes defaults for missing entries.
type CatalogRepository interface {
	// GetService retrieves a service by ID, nil if absent.
	GetService(id string) (*models.Service, error)
	// GetPromotion retrieves a promotion by ID, nil if absent.
	GetPromotion(id string) (*models.Promotion, error)
	// GetAllServices retrieves all services.
	GetAllServices() ([]models.Service, error)
	// GetAllPromotions retrieves all promotions.
	GetAllPromotions() ([]models.Promotion, error)
	// CreateService inserts a new service record.
	CreateService(svc *models.Service) error
	// UpdateService modifies an existing service record.
	UpdateService(svc *models.Service) error
	// DeleteService removes a service record by its ID.
	DeleteService(id string) error
	// CreatePromotion inserts a new promotion record.
	CreatePromotion(promo *models.Promotion) error
	// UpdatePromotion modifies an existing promotion record.
	UpdatePromotion(promo *models.Promotion) error
	// DeletePromotion removes a promotion record by its ID.
	DeletePromotion(id string) error
}
