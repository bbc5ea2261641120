package scheduling

import "errors"

// Validation errors surfaced as 400-class responses by the HTTP layer.
var (
	// ErrNoInstances is returned when a recurrence expands to zero
	// appointments. Silently accepting "book nothing" would hide a user
	// input error, so this must fail the request.
	ErrNoInstances = errors.New("no appointments match the selected days before the end date")

	// ErrInvalidStartTime is returned when the start date/time cannot be parsed.
	ErrInvalidStartTime = errors.New("invalid start date/time")

	// ErrInvalidEndDate is returned when the recurrence end date cannot be parsed.
	ErrInvalidEndDate = errors.New("invalid recurring end date")

	// ErrNoRecurringDays is returned when a recurring booking selects no valid weekdays.
	ErrNoRecurringDays = errors.New("no valid recurring days selected")
)

// IsValidationError reports whether err belongs to the 400-class taxonomy.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoInstances) ||
		errors.Is(err, ErrInvalidStartTime) ||
		errors.Is(err, ErrInvalidEndDate) ||
		errors.Is(err, ErrNoRecurringDays)
}
