package scheduling

import (
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/require"
)

func TestResolve_Service(t *testing.T) {
	cat := newFakeCatalog()
	cat.services["svc-haircut"] = haircutService()
	svc := newTestService(cat, &fakeAppointments{}, &fakeClients{}, time.Now())

	minutes, price := svc.Resolve("svc-haircut", "")
	require.Equal(t, 60, minutes)
	require.Equal(t, 35.0, price)
}

func TestResolve_PromotionUsesDiscountPrice(t *testing.T) {
	cat := newFakeCatalog()
	cat.promotions["promo-1"] = models.Promotion{
		ID:              "promo-1",
		Name:            "Intro Offer",
		Category:        "Massage",
		DurationMinutes: 50,
		OriginalPrice:   80,
		DiscountPrice:   55,
		Active:          true,
	}
	svc := newTestService(cat, &fakeAppointments{}, &fakeClients{}, time.Now())

	minutes, price := svc.Resolve("", "promo-1")
	require.Equal(t, 50, minutes)
	require.Equal(t, 55.0, price)
}

func TestResolve_MissFallsBackToDefaults(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{}, &fakeClients{}, time.Now())

	minutes, price := svc.Resolve("svc-missing", "")
	require.Equal(t, DefaultDurationMinutes, minutes)
	require.Equal(t, float64(DefaultPrice), price)
}

func TestResolve_NoSelectionFallsBackToDefaults(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{}, &fakeClients{}, time.Now())

	minutes, price := svc.Resolve("", "")
	require.Equal(t, DefaultDurationMinutes, minutes)
	require.Equal(t, float64(DefaultPrice), price)
}

func TestResolve_CatalogErrorFallsBackToDefaults(t *testing.T) {
	cat := newFakeCatalog()
	cat.failLookup = true
	svc := newTestService(cat, &fakeAppointments{}, &fakeClients{}, time.Now())

	minutes, price := svc.Resolve("svc-haircut", "")
	require.Equal(t, DefaultDurationMinutes, minutes)
	require.Equal(t, float64(DefaultPrice), price)
}
