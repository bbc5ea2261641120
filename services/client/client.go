package client

import (
	"errors"
	"fmt"
	"strings"

	"glowdesk/models"

	"github.com/google/uuid"
)

// ErrInvalidClient is returned when a client record fails validation.
var ErrInvalidClient = errors.New("invalid client")

// GetByID retrieves a client by ID.
func (s *DefaultClientService) GetByID(id string) (*models.Client, error) {
	return s.Repo.GetByID(id)
}

// GetByEmail retrieves a client by e-mail.
func (s *DefaultClientService) GetByEmail(email string) (*models.Client, error) {
	return s.Repo.GetByEmail(normalizeEmail(email))
}

// List returns all clients.
func (s *DefaultClientService) List() ([]models.Client, error) {
	return s.Repo.GetAll()
}

// LookupOrCreate finds a client by e-mail and creates the record when it
// does not exist yet.
func (s *DefaultClientService) LookupOrCreate(name, email, phone string) (*models.Client, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidClient)
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if name == "" {
		name = email
	}
	created := &models.Client{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := s.Repo.Create(created); err != nil {
		return nil, err
	}
	return created, nil
}

// Create validates and inserts a new client.
func (s *DefaultClientService) Create(client *models.Client) (*models.Client, error) {
	client.Email = normalizeEmail(client.Email)
	if client.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidClient)
	}
	if client.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidClient)
	}
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if err := s.Repo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update modifies an existing client.
func (s *DefaultClientService) Update(client *models.Client) (*models.Client, error) {
	client.Email = normalizeEmail(client.Email)
	if err := s.Repo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client.
func (s *DefaultClientService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
