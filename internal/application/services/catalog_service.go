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

// Catalog defaults applied when a create request omits or supplies an
// unusable value.
const (
	DefaultDurationMinutes = 30
	DefaultPrice           = 0
)

// CatalogService manages the bookable service catalog
type CatalogService struct {
	services ports.ServiceRepository
	logger   *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(services ports.ServiceRepository, logger *logger.Logger) *CatalogService {
	return &CatalogService{
		services: services,
		logger:   logger,
	}
}

// Create adds a catalog entry. A missing or non-positive duration falls back
// to 30 minutes, a missing or negative price to 0.
func (s *CatalogService) Create(ctx context.Context, req ports.CreateServiceRequest) (*entities.Service, error) {
	duration := DefaultDurationMinutes
	if req.Duration != nil && *req.Duration > 0 {
		duration = *req.Duration
	}

	price := float64(DefaultPrice)
	if req.Price != nil && *req.Price >= 0 {
		price = *req.Price
	}

	now := time.Now().UTC()
	service := &entities.Service{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Duration:  duration,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.logger.Info("Service created", "service_id", service.ID, "title", service.Title)
	return service, nil
}

// Get retrieves a catalog entry by ID
func (s *CatalogService) Get(ctx context.Context, id string) (*entities.Service, error) {
	return s.services.GetByID(ctx, id)
}

// List retrieves the full catalog in insertion order
func (s *CatalogService) List(ctx context.Context) ([]entities.Service, error) {
	return s.services.List(ctx)
}

// Update merges the patch onto the stored entry. Unusable duration or price
// values are ignored rather than defaulted, so a bad patch cannot clobber a
// previously valid field.
func (s *CatalogService) Update(ctx context.Context, id string, req ports.UpdateServiceRequest) (*entities.Service, error) {
	service, err := s.services.Update(ctx, id, func(sv *entities.Service) error {
		if req.Title != nil {
			sv.Title = *req.Title
		}
		if req.Duration != nil && *req.Duration > 0 {
			sv.Duration = *req.Duration
		}
		if req.Price != nil && *req.Price >= 0 {
			sv.Price = *req.Price
		}
		sv.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrServiceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	s.logger.Info("Service updated", "service_id", service.ID)
	return service, nil
}

// Delete removes a catalog entry. Deleting an unknown id is a no-op success.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.logger.Info("Service deleted", "service_id", id)
	return nil
}
