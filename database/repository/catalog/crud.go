package catalogRepo

import (
	"fmt"
	"time"

	"glowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateService inserts a new service document.
func (r *MongoCatalogRepo) CreateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.serviceColl.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService modifies an existing service document.
func (r *MongoCatalogRepo) UpdateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	result, err := r.serviceColl.UpdateOne(ctx, bson.M{"id": svc.ID}, bson.M{"$set": svc})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", svc.ID)
	}
	return nil
}

// DeleteService removes a service document by its ID.
func (r *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.serviceColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// CreatePromotion inserts a new promotion document.
func (r *MongoCatalogRepo) CreatePromotion(promo *models.Promotion) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	promo.CreatedAt = now
	promo.UpdatedAt = now

	if _, err := r.promoColl.InsertOne(ctx, promo); err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// UpdatePromotion modifies an existing promotion document.
func (r *MongoCatalogRepo) UpdatePromotion(promo *models.Promotion) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	promo.UpdatedAt = time.Now()
	result, err := r.promoColl.UpdateOne(ctx, bson.M{"id": promo.ID}, bson.M{"$set": promo})
	if err != nil {
		return fmt.Errorf("failed to update promotion with id %s: %w", promo.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("promotion with id %s not found", promo.ID)
	}
	return nil
}

// DeletePromotion removes a promotion document by its ID.
func (r *MongoCatalogRepo) DeletePromotion(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.promoColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete promotion with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("promotion with id %s not found", id)
	}
	return nil
}
