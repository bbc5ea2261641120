package scheduling

import (
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/require"
)

func existingAppt(id, serviceID string, start, end time.Time) models.Appointment {
	return models.Appointment{
		ID:            id,
		ServiceID:     serviceID,
		StartDateTime: start,
		EndDateTime:   end,
		Status:        models.AppointmentStatusConfirmed,
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	base := date(2024, time.May, 1, 10, 0)

	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"back-to-back", base, base.Add(time.Hour), base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"strict overlap", base, base.Add(time.Hour), base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"contained", base, base.Add(2 * time.Hour), base.Add(30 * time.Minute), base.Add(time.Hour), true},
		{"disjoint", base, base.Add(time.Hour), base.Add(3 * time.Hour), base.Add(4 * time.Hour), false},
		{"identical", base, base.Add(time.Hour), base, base.Add(time.Hour), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// Overlap is symmetric.
			require.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestCheckConflict_SameCategoryOverlap(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()

	appts := &fakeAppointments{appts: []models.Appointment{
		existingAppt("a1", "svc-haircut", date(2024, time.May, 1, 10, 0), date(2024, time.May, 1, 11, 0)),
	}}
	svc := newTestService(cat, appts, &fakeClients{}, time.Now())

	conflict, category := svc.CheckConflict(ConflictCandidate{
		Start:     date(2024, time.May, 1, 10, 30),
		End:       date(2024, time.May, 1, 11, 30),
		ServiceID: "svc-haircut",
	})
	require.True(t, conflict)
	require.Equal(t, "Haircut", category)
}

func TestCheckConflict_BackToBackIsNotAConflict(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()

	appts := &fakeAppointments{appts: []models.Appointment{
		existingAppt("a1", "svc-haircut", date(2024, time.May, 1, 10, 0), date(2024, time.May, 1, 11, 0)),
	}}
	svc := newTestService(cat, appts, &fakeClients{}, time.Now())

	conflict, _ := svc.CheckConflict(ConflictCandidate{
		Start:     date(2024, time.May, 1, 11, 0),
		End:       date(2024, time.May, 1, 12, 0),
		ServiceID: "svc-haircut",
	})
	require.False(t, conflict)
}

func TestCheckConflict_DifferentCategoryNoConflict(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	cat.services["svc-manicure"] = manicureService()

	appts := &fakeAppointments{appts: []models.Appointment{
		existingAppt("a1", "svc-haircut", date(2024, time.May, 1, 10, 0), date(2024, time.May, 1, 11, 0)),
	}}
	svc := newTestService(cat, appts, &fakeClients{}, time.Now())

	conflict, _ := svc.CheckConflict(ConflictCandidate{
		Start:     date(2024, time.May, 1, 10, 30),
		End:       date(2024, time.May, 1, 11, 30),
		ServiceID: "svc-manicure",
	})
	require.False(t, conflict)
}

func TestCheckConflict_ExcludesSelfWhenEditing(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()

	appts := &fakeAppointments{appts: []models.Appointment{
		existingAppt("editing", "svc-haircut", date(2024, time.May, 1, 10, 0), date(2024, time.May, 1, 11, 0)),
	}}
	svc := newTestService(cat, appts, &fakeClients{}, time.Now())

	conflict, _ := svc.CheckConflict(ConflictCandidate{
		Start:     date(2024, time.May, 1, 10, 0),
		End:       date(2024, time.May, 1, 11, 0),
		ServiceID: "svc-haircut",
		ExcludeID: "editing",
	})
	require.False(t, conflict, "an appointment must never conflict with itself")
}

func TestCheckConflict_UnresolvableCandidateCategorySkipsCheck(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()

	appts := &fakeAppointments{appts: []models.Appointment{
		existingAppt("a1", "svc-haircut", date(2024, time.May, 1, 10, 0), date(2024, time.May, 1, 11, 0)),
	}}
	svc := newTestService(cat, appts, &fakeClients{}, time.Now())

	conflict, _ := svc.CheckConflict(ConflictCandidate{
		Start:     date(2024, time.May, 1, 10, 30),
		End:       date(2024, time.May, 1, 11, 30),
		ServiceID: "svc-unknown",
	})
	require.False(t, conflict)
}

func TestCheckConflict_StoreFailureDegradesToNoConflict(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()

	appts := &fakeAppointments{failList: true}
	svc := newTestService(cat, appts, &fakeClients{}, time.Now())

	conflict, _ := svc.CheckConflict(ConflictCandidate{
		Start:     date(2024, time.May, 1, 10, 0),
		End:       date(2024, time.May, 1, 11, 0),
		ServiceID: "svc-haircut",
	})
	require.False(t, conflict)
}

func TestCheckConflict_PromotionSharesServiceCategory(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	cat.promotions["promo-cut"] = models.Promotion{
		ID:              "promo-cut",
		Name:            "Spring Cut",
		Category:        "Haircut",
		DurationMinutes: 60,
		OriginalPrice:   35,
		DiscountPrice:   20,
		Active:          true,
	}

	appts := &fakeAppointments{appts: []models.Appointment{
		{
			ID:            "a1",
			PromotionID:   "promo-cut",
			StartDateTime: date(2024, time.May, 1, 10, 0),
			EndDateTime:   date(2024, time.May, 1, 11, 0),
		},
	}}
	svc := newTestService(cat, appts, &fakeClients{}, time.Now())

	conflict, category := svc.CheckConflict(ConflictCandidate{
		Start:     date(2024, time.May, 1, 10, 30),
		End:       date(2024, time.May, 1, 11, 30),
		ServiceID: "svc-haircut",
	})
	require.True(t, conflict)
	require.Equal(t, "Haircut", category)
}
