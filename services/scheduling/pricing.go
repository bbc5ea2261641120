package scheduling

import (
	"glowdesk/models"
	"glowdesk/utils"

	"go.uber.org/zap"
)

// Fallback duration and price used when no catalog entry resolves. A booking
// is never blocked by a catalog inconsistency.
const (
	DefaultDurationMinutes = 30
	DefaultPrice           = 0
)

// Resolve returns the duration in minutes and the price to charge for the
// selected service or promotion. A promotion's price is its discount price.
// When neither reference resolves, the defaults are substituted; this never
// fails the request.
func (s *DefaultSchedulingService) Resolve(serviceID, promotionID string) (int, float64) {
	entry, ok := s.lookupEntry(serviceID, promotionID)
	if !ok {
		return DefaultDurationMinutes, DefaultPrice
	}
	return entry.DurationMinutes, entry.Price
}

// lookupEntry resolves the selected service or promotion to its scheduling
// view. The boolean result makes the partial-data tolerance explicit: a miss
// or a storage error both report !ok, and the caller substitutes defaults.
func (s *DefaultSchedulingService) lookupEntry(serviceID, promotionID string) (models.CatalogEntry, bool) {
	logger := utils.GetLogger()

	if serviceID != "" {
		svc, err := s.Catalog.GetService(serviceID)
		if err != nil {
			logger.Warn("catalog lookup failed, falling back to defaults",
				zap.String("serviceID", serviceID), zap.Error(err))
			return models.CatalogEntry{}, false
		}
		if svc == nil {
			return models.CatalogEntry{}, false
		}
		return svc.Entry(), true
	}

	if promotionID != "" {
		promo, err := s.Catalog.GetPromotion(promotionID)
		if err != nil {
			logger.Warn("catalog lookup failed, falling back to defaults",
				zap.String("promotionID", promotionID), zap.Error(err))
			return models.CatalogEntry{}, false
		}
		if promo == nil {
			return models.CatalogEntry{}, false
		}
		return promo.Entry(), true
	}

	return models.CatalogEntry{}, false
}
