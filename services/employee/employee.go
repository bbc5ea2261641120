package employee

import (
	"errors"
	"fmt"
	"strings"

	"glowdesk/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidEmployee is returned when an employee record fails validation.
	ErrInvalidEmployee = errors.New("invalid employee")
	// ErrInvalidCredentials is returned for a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// GetByID retrieves an employee by ID.
func (s *DefaultEmployeeService) GetByID(id string) (*models.Employee, error) {
	return s.Repo.GetByID(id)
}

// List returns all employees.
func (s *DefaultEmployeeService) List() ([]models.Employee, error) {
	return s.Repo.GetAll()
}

// Create validates the record, hashes the password and inserts the employee.
func (s *DefaultEmployeeService) Create(emp *models.Employee, password string) (*models.Employee, error) {
	emp.Email = strings.ToLower(strings.TrimSpace(emp.Email))
	if emp.Email == "" || emp.Name == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidEmployee)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidEmployee)
	}
	if emp.Role == "" {
		emp.Role = models.EmployeeRoleStaff
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	emp.PasswordHash = string(hash)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	emp.Active = true

	if err := s.Repo.Create(emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Update modifies an existing employee. The password hash is preserved.
func (s *DefaultEmployeeService) Update(emp *models.Employee) (*models.Employee, error) {
	current, err := s.Repo.GetByID(emp.ID)
	if err != nil {
		return nil, err
	}
	emp.PasswordHash = current.PasswordHash
	if err := s.Repo.Update(emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Delete removes an employee.
func (s *DefaultEmployeeService) Delete(id string) error {
	return s.Repo.Delete(id)
}
