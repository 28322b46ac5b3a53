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

// AppointmentService handles appointment booking
type AppointmentService struct {
	appointments ports.AppointmentRepository
	logger       *logger.Logger
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appointments ports.AppointmentRepository, logger *logger.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		logger:       logger,
	}
}

// resolveStartsAt collapses the accepted scheduling inputs to the canonical
// instant. A combined datetime wins over a date/time pair.
func resolveStartsAt(datetime, date, timeOfDay string) (time.Time, error) {
	if datetime != "" {
		t, err := time.Parse(time.RFC3339, datetime)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid datetime %q: %w", datetime, entities.ErrInvalidSchedule)
		}
		return t, nil
	}

	if date != "" && timeOfDay != "" {
		t, err := time.Parse("2006-01-02 15:04", date+" "+timeOfDay)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, timeOfDay, entities.ErrInvalidSchedule)
		}
		return t, nil
	}

	return time.Time{}, entities.ErrInvalidSchedule
}

// Create books an appointment. Customer and service references are stored as
// given; referential integrity is only enforced lazily via the customer
// delete cascade.
func (s *AppointmentService) Create(ctx context.Context, req ports.CreateAppointmentRequest) (*entities.Appointment, error) {
	startsAt, err := resolveStartsAt(req.Datetime, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appointment := &entities.Appointment{
		ID:         uuid.NewString(),
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		StartsAt:   startsAt,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.logger.Info("Appointment created",
		"appointment_id", appointment.ID,
		"customer_id", appointment.CustomerID,
		"starts_at", appointment.StartsAt,
	)
	return appointment, nil
}

// Get retrieves an appointment by ID
func (s *AppointmentService) Get(ctx context.Context, id string) (*entities.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// List retrieves appointments, optionally filtered to one calendar date
// (YYYY-MM-DD) and/or one catalog entry. Empty filters match everything.
func (s *AppointmentService) List(ctx context.Context, date, serviceID string) ([]entities.Appointment, error) {
	var (
		appointments []entities.Appointment
		err          error
	)
	if serviceID != "" {
		appointments, err = s.appointments.ListByService(ctx, serviceID)
	} else {
		appointments, err = s.appointments.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	if date == "" {
		return appointments, nil
	}

	filtered := make([]entities.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Date() == date {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Update merges the patch onto the stored appointment. Scheduling fields are
// recombined with the stored instant, so a patch carrying only a new time
// keeps the stored date and vice versa.
func (s *AppointmentService) Update(ctx context.Context, id string, req ports.UpdateAppointmentRequest) (*entities.Appointment, error) {
	appointment, err := s.appointments.Update(ctx, id, func(a *entities.Appointment) error {
		if req.CustomerID != nil {
			a.CustomerID = *req.CustomerID
		}
		if req.ServiceID != nil {
			a.ServiceID = *req.ServiceID
		}
		if req.Notes != nil {
			a.Notes = *req.Notes
		}

		if req.Datetime != nil {
			startsAt, err := resolveStartsAt(*req.Datetime, "", "")
			if err != nil {
				return err
			}
			a.StartsAt = startsAt
		} else if req.Date != nil || req.Time != nil {
			date := a.Date()
			if req.Date != nil {
				date = *req.Date
			}
			timeOfDay := a.TimeOfDay()
			if req.Time != nil {
				timeOfDay = *req.Time
			}
			startsAt, err := resolveStartsAt("", date, timeOfDay)
			if err != nil {
				return err
			}
			a.StartsAt = startsAt
		}

		a.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrAppointmentNotFound) || errors.Is(err, entities.ErrInvalidSchedule) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	s.logger.Info("Appointment updated", "appointment_id", appointment.ID)
	return appointment, nil
}

// Delete cancels an appointment. Deleting an unknown id is a no-op success.
func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	s.logger.Info("Appointment deleted", "appointment_id", id)
	return nil
}
