package scheduling

import (
	"time"

	"glowdesk/utils"

	"go.uber.org/zap"
)

// Overlaps reports whether the half-open ranges [s1,e1) and [s2,e2)
// intersect. Touching endpoints (back-to-back appointments) do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// CheckConflict scans existing appointments for a time overlap with the
// candidate within the same service category and returns the conflicting
// category name. It never fails: whenever category information is
// unavailable the check degrades to "no conflict".
func (s *DefaultSchedulingService) CheckConflict(cand ConflictCandidate) (bool, string) {
	category, ok := s.categoryOf(cand.ServiceID, cand.PromotionID)
	if !ok {
		// Category-less candidates are never checked.
		return false, ""
	}

	existing, err := s.Appointments.GetAll()
	if err != nil {
		utils.GetLogger().Warn("conflict check skipped: could not load appointments", zap.Error(err))
		return false, ""
	}

	// Repeated lookups for the same catalog entry are memoized per scan.
	memo := make(map[string]string)

	for i := range existing {
		appt := &existing[i]
		if cand.ExcludeID != "" && appt.ID == cand.ExcludeID {
			continue
		}
		if !Overlaps(cand.Start, cand.End, appt.StartDateTime, appt.EndDateTime) {
			continue
		}

		key := appt.ServiceID + "|" + appt.PromotionID
		other, seen := memo[key]
		if !seen {
			resolved, ok := s.categoryOf(appt.ServiceID, appt.PromotionID)
			if !ok {
				resolved = ""
			}
			memo[key] = resolved
			other = resolved
		}
		if other != "" && other == category {
			return true, category
		}
	}

	return false, ""
}

// categoryOf resolves the service category of a selection. The boolean is
// false when no category can be determined.
func (s *DefaultSchedulingService) categoryOf(serviceID, promotionID string) (string, bool) {
	entry, ok := s.lookupEntry(serviceID, promotionID)
	if !ok || entry.Category == "" {
		return "", false
	}
	return entry.Category, true
}
