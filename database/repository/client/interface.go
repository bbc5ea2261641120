package clientRepo

import "glowdesk/models"

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	// GetByID retrieves a client by its unique ID.
	GetByID(id string) (*models.Client, error)
	// GetByEmail retrieves a client by e-mail, nil if absent.
	GetByEmail(email string) (*models.Client, error)
	// GetAll retrieves all clients.
	GetAll() ([]models.Client, error)
	// Create inserts a new client record.
	Create(client *models.Client) error
	// Update modifies an existing client record.
	Update(client *models.Client) error
	// Delete removes a client record by its ID.
	Delete(id string) error
}
