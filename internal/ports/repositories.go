package ports

import (
	"context"

	"github.com/bookline/core/internal/domain/entities"
)

// Update operations take the merge as a callback so the repository can run
// the whole read-merge-write cycle under its collection lock; concurrent
// patches to the same collection serialize instead of losing one side.

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	Update(ctx context.Context, id string, apply func(*entities.Customer) error) (*entities.Customer, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Customer, error)
}

// ServiceRepository defines the interface for service catalog data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id string) (*entities.Service, error)
	Update(ctx context.Context, id string, apply func(*entities.Service) error) (*entities.Service, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Service, error)
}

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entities.Appointment) error
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)
	Update(ctx context.Context, id string, apply func(*entities.Appointment) error) (*entities.Appointment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Appointment, error)
	// ListByService returns the appointments referencing one catalog entry.
	ListByService(ctx context.Context, serviceID string) ([]entities.Appointment, error)
	// DeleteByCustomer removes every appointment referencing the customer
	// and reports how many records were dropped.
	DeleteByCustomer(ctx context.Context, customerID string) (int, error)
}
