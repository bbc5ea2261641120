package appointmentRepo

import (
	"time"

	"glowdesk/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetAll retrieves all appointments.
	GetAll() ([]models.Appointment, error)
	// GetByClient retrieves all appointments for a client.
	GetByClient(clientID string) ([]models.Appointment, error)
	// GetByRange retrieves appointments overlapping [from, to).
	GetByRange(from, to time.Time) ([]models.Appointment, error)
	// Create inserts a single appointment record.
	Create(appt *models.Appointment) error
	// CreateMany inserts a batch of appointment records. The insert is not
	// wrapped in a transaction; partial success is possible.
	CreateMany(appts []models.Appointment) ([]models.Appointment, error)
	// Update modifies an existing appointment record.
	Update(appt *models.Appointment) error
	// UpdateStatus transitions an appointment's status.
	UpdateStatus(id, status string) error
}
