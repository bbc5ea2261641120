package employeeRepo

import "glowdesk/models"

// EmployeeRepository defines methods for employee data access.
type EmployeeRepository interface {
	// GetByID retrieves an employee by its unique ID.
	GetByID(id string) (*models.Employee, error)
	// GetByEmail retrieves an employee by e-mail.
	GetByEmail(email string) (*models.Employee, error)
	// GetAll retrieves all employees.
	GetAll() ([]models.Employee, error)
	// Create inserts a new employee record.
	Create(emp *models.Employee) error
	// Update modifies an existing employee record.
	Update(emp *models.Employee) error
	// Delete removes an employee record by its ID.
	Delete(id string) error
}
