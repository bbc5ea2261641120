package scheduling

import (
	"fmt"
	"strings"
	"time"

	"glowdesk/models"
	"glowdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Accepted layouts for the booking start time. Layouts without a zone are
// interpreted in server-local time, matching how the calendar sends them.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const endDateLayout = "2006-01-02"

// CreateBooking resolves duration and price for the selection, expands a
// recurring request into concrete instances, looks the client up by e-mail
// (creating it when absent) and persists the appointments as one batch.
// The batch insert is not transactional; on storage failure some instances
// may already be persisted.
func (s *DefaultSchedulingService) CreateBooking(req models.BookingRequest) ([]models.Appointment, error) {
	logger := utils.GetLogger()

	start, err := parseStart(req.StartDateTime)
	if err != nil {
		return nil, err
	}

	durationMinutes, price := s.Resolve(req.ServiceID, req.PromotionID)

	var instances []Instance
	if req.IsRecurring {
		days := models.NewWeekdaySet(req.RecurringDays)
		if days.Empty() {
			return nil, ErrNoRecurringDays
		}

		var endDate *time.Time
		if req.RecurringEndDate != "" {
			parsed, err := time.ParseInLocation(endDateLayout, req.RecurringEndDate, start.Location())
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidEndDate, req.RecurringEndDate)
			}
			endDate = &parsed
		}

		instances = Expand(start, days, endDate, durationMinutes, s.now())
		if len(instances) == 0 {
			return nil, ErrNoInstances
		}
	} else {
		instances = []Instance{{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}}
	}

	// The client record is only touched once the request is known to be
	// valid, so a rejected booking leaves no record behind.
	client, err := s.lookupOrCreateClient(req)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	appts := make([]models.Appointment, 0, len(instances))
	for _, inst := range instances {
		appts = append(appts, models.Appointment{
			ID:              uuid.NewString(),
			ClientID:        client.ID,
			EmployeeID:      req.EmployeeID,
			ServiceID:       req.ServiceID,
			PromotionID:     req.PromotionID,
			StartDateTime:   inst.Start,
			EndDateTime:     inst.End,
			Status:          models.AppointmentStatusPending,
			PriceCharged:    price,
			DurationMinutes: durationMinutes,
			Source:          models.AppointmentSourcePublic,
			Notes:           req.Notes,
		})
	}

	created, err := s.Appointments.CreateMany(appts)
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("clientID", client.ID),
		zap.Int("instances", len(created)),
		zap.Bool("recurring", req.IsRecurring))
	return created, nil
}

// lookupOrCreateClient finds the client by e-mail and creates the record
// when it does not exist yet. The e-mail is the client's identity and is
// lower-cased and trimmed before any lookup or write.
func (s *DefaultSchedulingService) lookupOrCreateClient(req models.BookingRequest) (*models.Client, error) {
	email := strings.ToLower(strings.TrimSpace(req.ClientEmail))

	client, err := s.Clients.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}

	name := req.ClientName
	if name == "" {
		name = email
	}
	client = &models.Client{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: req.ClientPhone,
	}
	if err := s.Clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

func parseStart(raw string) (time.Time, error) {
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartTime, raw)
}
