package scheduling

import (
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/require"
)

func TestCreateBooking_Single(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	appts := &fakeAppointments{}
	clients := &fakeClients{}
	svc := newTestService(cat, appts, clients, time.Now())

	created, err := svc.CreateBooking(models.BookingRequest{
		ClientName:    "Dana",
		ClientEmail:   "dana@example.com",
		ServiceID:     "svc-haircut",
		StartDateTime: "2024-05-06T10:00:00Z",
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	appt := created[0]
	require.Equal(t, 60, appt.DurationMinutes)
	require.Equal(t, 35.0, appt.PriceCharged)
	require.Equal(t, models.AppointmentStatusPending, appt.Status)
	require.Equal(t, models.AppointmentSourcePublic, appt.Source)
	require.Equal(t, appt.StartDateTime.Add(60*time.Minute), appt.EndDateTime)

	// The client was created from the booking payload.
	require.Len(t, clients.clients, 1)
	require.Equal(t, "dana@example.com", clients.clients[0].Email)
	require.Equal(t, clients.clients[0].ID, appt.ClientID)
}

func TestCreateBooking_ReusesExistingClient(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	clients := &fakeClients{clients: []models.Client{{
		ID:    "client-1",
		Name:  "Dana",
		Email: "dana@example.com",
	}}}
	svc := newTestService(cat, &fakeAppointments{}, clients, time.Now())

	created, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:   "dana@example.com",
		ServiceID:     "svc-haircut",
		StartDateTime: "2024-05-06T10:00:00Z",
	})
	require.NoError(t, err)
	require.Equal(t, "client-1", created[0].ClientID)
	require.Len(t, clients.clients, 1)
}

func TestCreateBooking_NormalizesClientEmail(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	clients := &fakeClients{clients: []models.Client{{
		ID:    "client-1",
		Name:  "Dana",
		Email: "dana@example.com",
	}}}
	svc := newTestService(cat, &fakeAppointments{}, clients, time.Now())

	// Casing and stray whitespace must resolve to the same client identity.
	created, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:   "Dana@Example.com ",
		ServiceID:     "svc-haircut",
		StartDateTime: "2024-05-06T10:00:00Z",
	})
	require.NoError(t, err)
	require.Equal(t, "client-1", created[0].ClientID)
	require.Len(t, clients.clients, 1)
}

func TestCreateBooking_RecurringMondays(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	appts := &fakeAppointments{}
	svc := newTestService(cat, appts, &fakeClients{}, time.Now())

	created, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:      "dana@example.com",
		ServiceID:        "svc-haircut",
		StartDateTime:    "2024-01-01T10:00:00Z",
		IsRecurring:      true,
		RecurringDays:    []int{1},
		RecurringEndDate: "2024-01-15",
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	for _, appt := range created {
		require.Equal(t, time.Monday, appt.StartDateTime.Weekday())
		require.Equal(t, appt.StartDateTime.Add(60*time.Minute), appt.EndDateTime)
	}
	require.Len(t, appts.appts, 3)
}

func TestCreateBooking_RecurringNoMatchingDays(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	svc := newTestService(cat, &fakeAppointments{}, &fakeClients{}, time.Now())

	// Monday start, Wednesday selected, bound on Tuesday: nothing matches and
	// the request must fail rather than quietly book nothing.
	_, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:      "dana@example.com",
		ServiceID:        "svc-haircut",
		StartDateTime:    "2024-01-01T10:00:00Z",
		IsRecurring:      true,
		RecurringDays:    []int{3},
		RecurringEndDate: "2024-01-02",
	})
	require.ErrorIs(t, err, ErrNoInstances)
	require.True(t, IsValidationError(err))
}

func TestCreateBooking_RejectedRequestCreatesNoClient(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	clients := &fakeClients{}
	svc := newTestService(cat, &fakeAppointments{}, clients, time.Now())

	_, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:      "dana@example.com",
		ServiceID:        "svc-haircut",
		StartDateTime:    "2024-01-01T10:00:00Z",
		IsRecurring:      true,
		RecurringDays:    []int{3},
		RecurringEndDate: "2024-01-02",
	})
	require.ErrorIs(t, err, ErrNoInstances)

	// The failed request must leave no client record behind.
	require.Empty(t, clients.clients)
}

func TestCreateBooking_RecurringNoValidDays(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{}, &fakeClients{}, time.Now())

	_, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:   "dana@example.com",
		StartDateTime: "2024-01-01T10:00:00Z",
		IsRecurring:   true,
		RecurringDays: []int{7, -1},
	})
	require.ErrorIs(t, err, ErrNoRecurringDays)
}

func TestCreateBooking_InvalidStart(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{}, &fakeClients{}, time.Now())

	_, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:   "dana@example.com",
		StartDateTime: "next tuesday",
	})
	require.ErrorIs(t, err, ErrInvalidStartTime)
	require.True(t, IsValidationError(err))
}

func TestCreateBooking_InvalidEndDate(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{}, &fakeClients{}, time.Now())

	_, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:      "dana@example.com",
		StartDateTime:    "2024-01-01T10:00:00Z",
		IsRecurring:      true,
		RecurringDays:    []int{1},
		RecurringEndDate: "01/15/2024",
	})
	require.ErrorIs(t, err, ErrInvalidEndDate)
}

func TestCreateBooking_UnknownServiceGetsDefaults(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{}, &fakeClients{}, time.Now())

	created, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:   "dana@example.com",
		ServiceID:     "svc-missing",
		StartDateTime: "2024-05-06T10:00:00Z",
	})
	require.NoError(t, err, "a catalog inconsistency must not block the booking")
	require.Equal(t, DefaultDurationMinutes, created[0].DurationMinutes)
	require.Equal(t, float64(DefaultPrice), created[0].PriceCharged)
}

func TestCreateBooking_StorageFailureIsNotValidation(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	svc := newTestService(cat, &fakeAppointments{failInsert: true}, &fakeClients{}, time.Now())

	_, err := svc.CreateBooking(models.BookingRequest{
		ClientEmail:   "dana@example.com",
		ServiceID:     "svc-haircut",
		StartDateTime: "2024-05-06T10:00:00Z",
	})
	require.Error(t, err)
	require.False(t, IsValidationError(err))
}
