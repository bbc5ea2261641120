package dashboard

import (
	appointmentRepo "glowdesk/database/repository/appointment"

	"glowdesk/models"
)

// DashboardService aggregates appointment data into the summary shown on
// the admin dashboard.
type DashboardService interface {
	Summary() (*models.DashboardSummary, error)
}

// DefaultDashboardService implements DashboardService. Summaries are cached
// in redis for a short TTL since the aggregation scans the appointment list.
type DefaultDashboardService struct {
	Appointments appointmentRepo.AppointmentRepository
}
