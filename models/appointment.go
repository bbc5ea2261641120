package models

import "time"

// Appointment statuses. Cancellation is a status transition, never a delete.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment sources.
const (
	AppointmentSourcePublic = "public_booking"
	AppointmentSourceAdmin  = "admin"
)

// Appointment represents one concrete booked visit. In the well-formed case
// exactly one of ServiceID/PromotionID identifies what was booked.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	ClientID        string    `bson:"client_id" json:"client_id"`
	EmployeeID      string    `bson:"employee_id,omitempty" json:"employee_id,omitempty"`
	ServiceID       string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	PromotionID     string    `bson:"promotion_id,omitempty" json:"promotion_id,omitempty"`
	StartDateTime   time.Time `bson:"start_date_time" json:"start_date_time"`
	EndDateTime     time.Time `bson:"end_date_time" json:"end_date_time"`
	Status          string    `bson:"status" json:"status"`
	PriceCharged    float64   `bson:"price_charged" json:"price_charged"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Source          string    `bson:"source" json:"source"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the JSON body of POST /api/booking. It carries either a
// single appointment or a recurrence payload.
type BookingRequest struct {
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email" binding:"required,email"`
	ClientPhone   string `json:"client_phone"`
	ServiceID     string `json:"service_id"`
	PromotionID   string `json:"promotion_id"`
	EmployeeID    string `json:"employee_id"`
	StartDateTime string `json:"start_date_time" binding:"required"`
	Notes         string `json:"notes"`

	IsRecurring      bool   `json:"is_recurring"`
	RecurringDays    []int  `json:"recurring_days"`
	RecurringEndDate string `json:"recurring_end_date"`
}

// ConflictCheckRequest is the JSON body of POST /api/schedule/conflict-check,
// run reactively by the calendar UI while an appointment is being edited.
type ConflictCheckRequest struct {
	ServiceID     string `json:"service_id"`
	PromotionID   string `json:"promotion_id"`
	StartDateTime string `json:"start_date_time" binding:"required"`
	EndDateTime   string `json:"end_date_time" binding:"required"`
	ExcludeID     string `json:"exclude_id"`
}

// ReminderPayload is the asynq task payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointment_id"`
	ClientEmail   string `json:"client_email"`
	ClientName    string `json:"client_name"`
	StartDateTime string `json:"start_date_time"`
	ServiceName   string `json:"service_name"`
}
