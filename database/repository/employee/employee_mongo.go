package employeeRepo

import (
	"context"
	"fmt"
	"time"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEmployeeRepo implements EmployeeRepository using MongoDB.
type MongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo creates a new instance of EmployeeRepository using MongoDB.
func NewMongoEmployeeRepo() EmployeeRepository {
	coll := database.DB().Collection("employees")
	repo := &MongoEmployeeRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoEmployeeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an employee by its ID.
func (r *MongoEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var emp models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&emp); err != nil {
		return nil, fmt.Errorf("employee with id %s not found: %w", id, err)
	}
	return &emp, nil
}

// GetByEmail retrieves an employee by e-mail.
func (r *MongoEmployeeRepo) GetByEmail(email string) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var emp models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&emp); err != nil {
		return nil, fmt.Errorf("employee with email %s not found: %w", email, err)
	}
	return &emp, nil
}

// GetAll retrieves all employees sorted by name.
func (r *MongoEmployeeRepo) GetAll() ([]models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching employees: %w", err)
	}
	defer cursor.Close(ctx)

	var emps []models.Employee
	for cursor.Next(ctx) {
		var e models.Employee
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("error decoding employee: %w", err)
		}
		emps = append(emps, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return emps, nil
}

// Create inserts a new employee document.
func (r *MongoEmployeeRepo) Create(emp *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, emp); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Update modifies an existing employee document.
func (r *MongoEmployeeRepo) Update(emp *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	emp.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": emp.ID}, bson.M{"$set": emp})
	if err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee with id %s not found", emp.ID)
	}
	return nil
}

// Delete removes an employee document by its ID.
func (r *MongoEmployeeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("employee with id %s not found", id)
	}
	return nil
}
