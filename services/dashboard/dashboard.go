package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"glowdesk/models"
	"glowdesk/utils"

	"go.uber.org/zap"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 60 * time.Second
	upcomingLimit   = 10
)

// Summary returns the dashboard aggregate, serving a cached copy when one
// is fresh.
func (s *DefaultDashboardService) Summary() (*models.DashboardSummary, error) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cache := utils.GetCacheClient()
	if raw, err := cache.Get(ctx, summaryCacheKey).Result(); err == nil {
		var cached models.DashboardSummary
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
		logger.Warn("discarding unreadable cached dashboard summary", zap.Error(err))
	}

	summary, err := s.buildSummary()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(summary); err == nil {
		if err := cache.Set(ctx, summaryCacheKey, raw, summaryCacheTTL).Err(); err != nil {
			logger.Warn("failed to cache dashboard summary", zap.Error(err))
		}
	}
	return summary, nil
}

func (s *DefaultDashboardService) buildSummary() (*models.DashboardSummary, error) {
	appts, err := s.Appointments.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	weekEnd := todayStart.AddDate(0, 0, 7)

	summary := &models.DashboardSummary{
		CountsByStatus: make(map[string]int),
		GeneratedAt:    now,
	}

	var upcoming []models.Appointment
	for _, a := range appts {
		summary.CountsByStatus[a.Status]++

		if a.Status == models.AppointmentStatusCancelled {
			continue
		}
		if !a.StartDateTime.Before(todayStart) && a.StartDateTime.Before(todayEnd) {
			summary.BookingsToday++
		}
		if !a.StartDateTime.Before(todayStart) && a.StartDateTime.Before(weekEnd) {
			summary.BookingsWeek++
		}
		if a.Status == models.AppointmentStatusCompleted {
			summary.Revenue += a.PriceCharged
		}
		if a.StartDateTime.After(now) {
			upcoming = append(upcoming, a)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartDateTime.Before(upcoming[j].StartDateTime)
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	summary.Upcoming = upcoming

	return summary, nil
}
