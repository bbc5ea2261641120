package employee

import (
	employeeRepo "glowdesk/database/repository/employee"

	"glowdesk/models"
)

// EmployeeService manages staff accounts and their admin-surface access.
type EmployeeService interface {
	GetByID(id string) (*models.Employee, error)
	List() ([]models.Employee, error)
	Create(emp *models.Employee, password string) (*models.Employee, error)
	Update(emp *models.Employee) (*models.Employee, error)
	Delete(id string) error
	// Authenticate checks credentials and returns a signed JWT.
	Authenticate(email, password string) (string, *models.Employee, error)
	// RevokeToken records a token hash in the revocation list.
	RevokeToken(token string) error
}

// DefaultEmployeeService implements EmployeeService.
type DefaultEmployeeService struct {
	Repo employeeRepo.EmployeeRepository
}
