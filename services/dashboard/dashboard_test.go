package dashboard

import (
	"errors"
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/require"
)

type fakeAppointments struct {
	appts   []models.Appointment
	failAll bool
}

func (f *fakeAppointments) GetByID(id string) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAppointments) GetAll() ([]models.Appointment, error) {
	if f.failAll {
		return nil, errors.New("store offline")
	}
	return f.appts, nil
}

func (f *fakeAppointments) GetByClient(clientID string) ([]models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAppointments) GetByRange(from, to time.Time) ([]models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAppointments) Create(appt *models.Appointment) error { return nil }

func (f *fakeAppointments) CreateMany(appts []models.Appointment) ([]models.Appointment, error) {
	return appts, nil
}

func (f *fakeAppointments) Update(appt *models.Appointment) error { return nil }
func (f *fakeAppointments) UpdateStatus(id, status string) error  { return nil }

func appt(id, status string, start time.Time, price float64) models.Appointment {
	return models.Appointment{
		ID:            id,
		Status:        status,
		StartDateTime: start,
		EndDateTime:   start.Add(30 * time.Minute),
		PriceCharged:  price,
	}
}

func TestBuildSummaryCountsAndRevenue(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	inTwoHours := now.Add(2 * time.Hour)
	nextMonth := now.AddDate(0, 1, 0)

	svc := &DefaultDashboardService{Appointments: &fakeAppointments{appts: []models.Appointment{
		appt("a1", models.AppointmentStatusCompleted, yesterday, 40),
		appt("a2", models.AppointmentStatusConfirmed, inTwoHours, 25),
		appt("a3", models.AppointmentStatusCancelled, inTwoHours, 25),
		appt("a4", models.AppointmentStatusPending, nextMonth, 60),
	}}}

	summary, err := svc.buildSummary()
	require.NoError(t, err)

	require.Equal(t, 1, summary.CountsByStatus[models.AppointmentStatusCompleted])
	require.Equal(t, 1, summary.CountsByStatus[models.AppointmentStatusConfirmed])
	require.Equal(t, 1, summary.CountsByStatus[models.AppointmentStatusCancelled])
	require.Equal(t, 1, summary.CountsByStatus[models.AppointmentStatusPending])

	// Only completed appointments count toward revenue.
	require.Equal(t, 40.0, summary.Revenue)

	// Cancelled appointments are excluded from today's bookings.
	require.Equal(t, 1, summary.BookingsToday)
	require.Equal(t, 1, summary.BookingsWeek)
}

func TestBuildSummaryUpcomingSortedAndCapped(t *testing.T) {
	now := time.Now()
	var appts []models.Appointment
	for i := 12; i >= 1; i-- {
		appts = append(appts, appt(
			"u"+string(rune('a'+i)),
			models.AppointmentStatusConfirmed,
			now.Add(time.Duration(i)*time.Hour),
			10,
		))
	}

	svc := &DefaultDashboardService{Appointments: &fakeAppointments{appts: appts}}
	summary, err := svc.buildSummary()
	require.NoError(t, err)

	require.Len(t, summary.Upcoming, upcomingLimit)
	for i := 1; i < len(summary.Upcoming); i++ {
		require.True(t, summary.Upcoming[i-1].StartDateTime.Before(summary.Upcoming[i].StartDateTime))
	}
}

func TestBuildSummaryStoreFailure(t *testing.T) {
	svc := &DefaultDashboardService{Appointments: &fakeAppointments{failAll: true}}
	_, err := svc.buildSummary()
	require.Error(t, err)
}
