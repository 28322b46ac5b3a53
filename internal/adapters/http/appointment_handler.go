package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookline/core/internal/application/services"
	"github.com/bookline/core/internal/domain/entities"
	"github.com/bookline/core/internal/infrastructure/logger"
	"github.com/bookline/core/internal/ports"
)

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	appointmentService *services.AppointmentService
	logger             *logger.Logger
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *services.AppointmentService, logger *logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		logger:             logger,
	}
}

// List handles GET /api/appointments with optional ?date=YYYY-MM-DD and
// ?serviceId= filters
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.appointmentService.List(c.Request().Context(), c.QueryParam("date"), c.QueryParam("serviceId"))
	if err != nil {
		h.logger.Error("List appointments failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appointments)
}

// Get handles GET /api/appointments/:id
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "appointment")
	if err != nil {
		return err
	}

	appointment, err := h.appointmentService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrAppointmentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
		}
		h.logger.Error("Get appointment failed", "error", err, "appointment_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appointment)
}

// Create handles POST /api/appointments
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req ports.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	appointment, err := h.appointmentService.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidSchedule) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error("Create appointment failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, appointment)
}

// Update handles PUT /api/appointments/:id
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "appointment")
	if err != nil {
		return err
	}

	var req ports.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	appointment, err := h.appointmentService.Update(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrAppointmentNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
		case errors.Is(err, entities.ErrInvalidSchedule):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error("Update appointment failed", "error", err, "appointment_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appointment)
}

// Delete handles DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "appointment")
	if err != nil {
		return err
	}

	if err := h.appointmentService.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete appointment failed", "error", err, "appointment_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
