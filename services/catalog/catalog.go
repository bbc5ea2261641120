package catalog

import (
	"fmt"
	"time"

	"glowdesk/models"

	"github.com/google/uuid"
)

// GetService retrieves a service by ID.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	svc, err := s.Repo.GetService(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("%w: service %s", ErrNotFound, id)
	}
	return svc, nil
}

// GetPromotion retrieves a promotion by ID.
func (s *DefaultCatalogService) GetPromotion(id string) (*models.Promotion, error) {
	promo, err := s.Repo.GetPromotion(id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, fmt.Errorf("%w: promotion %s", ErrNotFound, id)
	}
	return promo, nil
}

// ListServices returns all services.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	return s.Repo.GetAllServices()
}

// ListPromotions returns all promotions.
func (s *DefaultCatalogService) ListPromotions() ([]models.Promotion, error) {
	return s.Repo.GetAllPromotions()
}

// ListActivePromotions returns active promotions whose validity window
// contains the current time.
func (s *DefaultCatalogService) ListActivePromotions() ([]models.Promotion, error) {
	promos, err := s.Repo.GetAllPromotions()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var active []models.Promotion
	for _, p := range promos {
		if !p.Active {
			continue
		}
		if p.ValidFrom.After(now) || p.ValidUntil.Before(now) {
			continue
		}
		active = append(active, p)
	}
	return active, nil
}

// CreateService validates and inserts a new service.
func (s *DefaultCatalogService) CreateService(svc *models.Service) (*models.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	svc.Active = true
	if err := s.Repo.CreateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService validates and updates an existing service.
func (s *DefaultCatalogService) UpdateService(svc *models.Service) (*models.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service.
func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Repo.DeleteService(id)
}

// CreatePromotion validates and inserts a new promotion.
func (s *DefaultCatalogService) CreatePromotion(promo *models.Promotion) (*models.Promotion, error) {
	if err := validatePromotion(promo); err != nil {
		return nil, err
	}
	if promo.ID == "" {
		promo.ID = uuid.NewString()
	}
	promo.Active = true
	if err := s.Repo.CreatePromotion(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// UpdatePromotion validates and updates an existing promotion.
func (s *DefaultCatalogService) UpdatePromotion(promo *models.Promotion) (*models.Promotion, error) {
	if err := validatePromotion(promo); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdatePromotion(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// DeletePromotion removes a promotion.
func (s *DefaultCatalogService) DeletePromotion(id string) error {
	return s.Repo.DeletePromotion(id)
}

func validateService(svc *models.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEntry)
	}
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidEntry)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidEntry)
	}
	return nil
}

func validatePromotion(promo *models.Promotion) error {
	if promo.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEntry)
	}
	if promo.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidEntry)
	}
	if promo.DiscountPrice < 0 || promo.DiscountPrice > promo.OriginalPrice {
		return fmt.Errorf("%w: discount price must be between 0 and the original price", ErrInvalidEntry)
	}
	if promo.ValidUntil.Before(promo.ValidFrom) {
		return fmt.Errorf("%w: validity window ends before it starts", ErrInvalidEntry)
	}
	return nil
}
