package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookline/core/internal/domain/entities"
	"github.com/bookline/core/internal/infrastructure/logger"
	"github.com/bookline/core/internal/ports"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customers    ports.CustomerRepository
	appointments ports.AppointmentRepository
	logger       *logger.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers ports.CustomerRepository, appointments ports.AppointmentRepository, logger *logger.Logger) *CustomerService {
	return &CustomerService{
		customers:    customers,
		appointments: appointments,
		logger:       logger,
	}
}

// Create registers a new customer
func (s *CustomerService) Create(ctx context.Context, req ports.CreateCustomerRequest) (*entities.Customer, error) {
	now := time.Now().UTC()
	customer := &entities.Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("Customer created", "customer_id", customer.ID)
	return customer, nil
}

// Get retrieves a customer by ID
func (s *CustomerService) Get(ctx context.Context, id string) (*entities.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// List retrieves all customers in insertion order
func (s *CustomerService) List(ctx context.Context) ([]entities.Customer, error) {
	return s.customers.List(ctx)
}

// Update merges the patch onto the stored customer. Nil fields retain their
// prior values; ID and CreatedAt are never touched. The merge runs inside
// the repository's collection lock so concurrent patches to the same record
// serialize instead of overwriting each other.
func (s *CustomerService) Update(ctx context.Context, id string, req ports.UpdateCustomerRequest) (*entities.Customer, error) {
	customer, err := s.customers.Update(ctx, id, func(c *entities.Customer) error {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		c.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrCustomerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	s.logger.Info("Customer updated", "customer_id", customer.ID)
	return customer, nil
}

// Delete removes a customer and cascades to the appointments referencing it.
// The two writes hit separate collection files and are not transactional; a
// crash in between leaves dangling appointments behind, which the cascade
// cleans up on the next delete of the same id. Deleting an unknown id is a
// no-op success.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	removed, err := s.appointments.DeleteByCustomer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cascade appointment delete: %w", err)
	}

	s.logger.Info("Customer deleted", "customer_id", id, "appointments_removed", removed)
	return nil
}
