package scheduling

import (
	"time"

	appointmentRepo "glowdesk/database/repository/appointment"
	catalogRepo "glowdesk/database/repository/catalog"
	clientRepo "glowdesk/database/repository/client"

	"glowdesk/models"
)

// SchedulingService defines the booking and conflict-detection engine.
type SchedulingService interface {
	// CreateBooking handles a public booking request, expanding recurring
	// bookings into concrete appointments and persisting them as one batch.
	CreateBooking(req models.BookingRequest) ([]models.Appointment, error)
	// CheckConflict reports whether the candidate overlaps an existing
	// appointment of the same service category, and names that category.
	CheckConflict(cand ConflictCandidate) (bool, string)
	// Resolve returns the duration in minutes and price for the selected
	// service or promotion, substituting defaults when neither resolves.
	Resolve(serviceID, promotionID string) (int, float64)
}

// ConflictCandidate is the time range and selection being checked while an
// appointment is created or edited in the calendar.
type ConflictCandidate struct {
	Start       time.Time
	End         time.Time
	ServiceID   string
	PromotionID string
	// ExcludeID skips the appointment being edited in place.
	ExcludeID string
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	Catalog      catalogRepo.CatalogRepository
	Appointments appointmentRepo.AppointmentRepository
	Clients      clientRepo.ClientRepository

	// Now is an injectable clock; nil means time.Now. The default recurrence
	// bound depends on it.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
