package models

import "time"

// DashboardSummary is the payload of GET /api/dashboard/summary.
type DashboardSummary struct {
	CountsByStatus map[string]int `json:"counts_by_status"`
	BookingsToday  int            `json:"bookings_today"`
	BookingsWeek   int            `json:"bookings_week"`
	Revenue        float64        `json:"revenue"`
	Upcoming       []Appointment  `json:"upcoming"`
	GeneratedAt    time.Time      `json:"generated_at"`
}
