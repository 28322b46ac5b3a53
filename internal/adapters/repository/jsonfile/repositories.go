package jsonfile

import (
	"context"

	"github.com/bookline/core/internal/domain/entities"
)

// CustomerRepository persists customers in customers.json.
type CustomerRepository struct {
	col *Collection[entities.Customer]
}

// NewCustomerRepository creates a customer repository backed by the store.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{
		col: NewCollection(store, CustomersCollection,
			func(c *entities.Customer) string { return c.ID },
			entities.ErrCustomerNotFound),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	return r.col.Insert(ctx, customer)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	return r.col.GetByID(ctx, id)
}

func (r *CustomerRepository) Update(ctx context.Context, id string, apply func(*entities.Customer) error) (*entities.Customer, error) {
	return r.col.Update(ctx, id, apply)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

func (r *CustomerRepository) List(ctx context.Context) ([]entities.Customer, error) {
	return r.col.List(ctx)
}

// ServiceRepository persists the service catalog in services.json.
type ServiceRepository struct {
	col *Collection[entities.Service]
}

// NewServiceRepository creates a service repository backed by the store.
func NewServiceRepository(store *Store) *ServiceRepository {
	return &ServiceRepository{
		col: NewCollection(store, ServicesCollection,
			func(s *entities.Service) string { return s.ID },
			entities.ErrServiceNotFound),
	}
}

func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	return r.col.Insert(ctx, service)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	return r.col.GetByID(ctx, id)
}

func (r *ServiceRepository) Update(ctx context.Context, id string, apply func(*entities.Service) error) (*entities.Service, error) {
	return r.col.Update(ctx, id, apply)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

func (r *ServiceRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.col.List(ctx)
}

// AppointmentRepository persists appointments in appointments.json.
type AppointmentRepository struct {
	col *Collection[entities.Appointment]
}

// NewAppointmentRepository creates an appointment repository backed by the store.
func NewAppointmentRepository(store *Store) *AppointmentRepository {
	return &AppointmentRepository{
		col: NewCollection(store, AppointmentsCollection,
			func(a *entities.Appointment) string { return a.ID },
			entities.ErrAppointmentNotFound),
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	return r.col.Insert(ctx, appointment)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	return r.col.GetByID(ctx, id)
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, apply func(*entities.Appointment) error) (*entities.Appointment, error) {
	return r.col.Update(ctx, id, apply)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

func (r *AppointmentRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	return r.col.List(ctx)
}

// ListByService returns the appointments booked against one catalog entry,
// in file order.
func (r *AppointmentRepository) ListByService(ctx context.Context, serviceID string) ([]entities.Appointment, error) {
	appointments, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entities.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.ServiceID == serviceID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// DeleteByCustomer drops every appointment referencing the customer. This is
// the cascade half of customer deletion; it rewrites appointments.json as a
// separate, non-transactional write.
func (r *AppointmentRepository) DeleteByCustomer(ctx context.Context, customerID string) (int, error) {
	return r.col.DeleteWhere(ctx, func(a *entities.Appointment) bool {
		return a.CustomerID == customerID
	})
}
