package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	serviceColl *mongo.Collection
	promoColl   *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		serviceColl: db.Collection("services"),
		promoColl:   db.Collection("promotions"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIndex := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	if _, err := r.serviceColl.Indexes().CreateMany(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	if _, err := r.promoColl.Indexes().CreateMany(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create promotion indexes: %w", err)
	}
	return nil
}

// GetService retrieves a service by ID. A miss returns (nil, nil): a booking
// is never blocked by a catalog inconsistency.
func (r *MongoCatalogRepo) GetService(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	err := r.serviceColl.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching service %s: %w", id, err)
	}
	return &svc, nil
}

// GetPromotion retrieves a promotion by ID, (nil, nil) on a miss.
func (r *MongoCatalogRepo) GetPromotion(id string) (*models.Promotion, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var promo models.Promotion
	err := r.promoColl.FindOne(ctx, bson.M{"id": id}).Decode(&promo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching promotion %s: %w", id, err)
	}
	return &promo, nil
}

// GetAllServices retrieves all services sorted by name.
func (r *MongoCatalogRepo) GetAllServices() ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.serviceColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding service: %w", err)
		}
		services = append(services, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return services, nil
}

// GetAllPromotions retrieves all promotions sorted by name.
func (r *MongoCatalogRepo) GetAllPromotions() ([]models.Promotion, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.promoColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching promotions: %w", err)
	}
	defer cursor.Close(ctx)

	var promos []models.Promotion
	for cursor.Next(ctx) {
		var p models.Promotion
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding promotion: %w", err)
		}
		promos = append(promos, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return promos, nil
}
