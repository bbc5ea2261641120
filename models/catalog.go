package models

import "time"

// Service is a bookable catalog entry (e.g. "Haircut", 45 min, 30.00).
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category" json:"category"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Price           float64   `bson:"price" json:"price"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// Promotion is a time-limited discounted catalog entry.
type Promotion struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category" json:"category"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	OriginalPrice   float64   `bson:"original_price" json:"original_price"`
	DiscountPrice   float64   `bson:"discount_price" json:"discount_price"`
	ValidFrom       time.Time `bson:"valid_from" json:"valid_from"`
	ValidUntil      time.Time `bson:"valid_until" json:"valid_until"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// CatalogEntry is the resolved view of either a service or a promotion, as
// consumed by the scheduling core. Price is the amount actually charged
// (a promotion's discount price).
type CatalogEntry struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// Entry converts a service to its scheduling view.
func (s *Service) Entry() CatalogEntry {
	return CatalogEntry{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// Entry converts a promotion to its scheduling view.
func (p *Promotion) Entry() CatalogEntry {
	return CatalogEntry{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		DurationMinutes: p.DurationMinutes,
		Price:           p.DiscountPrice,
	}
}
