package client

import (
	clientRepo "glowdesk/database/repository/client"

	"glowdesk/models"
)

// ClientService manages the customers of the business.
type ClientService interface {
	GetByID(id string) (*models.Client, error)
	GetByEmail(email string) (*models.Client, error)
	List() ([]models.Client, error)
	// LookupOrCreate finds a client by e-mail, creating the record when absent.
	LookupOrCreate(name, email, phone string) (*models.Client, error)
	Create(client *models.Client) (*models.Client, error)
	Update(client *models.Client) (*models.Client, error)
	Delete(id string) error
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}
