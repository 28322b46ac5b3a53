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

// CustomerHandler handles customer-related requests
type CustomerHandler struct {
	customerService *services.CustomerService
	logger          *logger.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService, logger *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// List handles GET /api/customers
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("List customers failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, customers)
}

// Get handles GET /api/customers/:id
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "customer")
	if err != nil {
		return err
	}

	customer, err := h.customerService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrCustomerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Customer not found")
		}
		h.logger.Error("Get customer failed", "error", err, "customer_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, customer)
}

// Create handles POST /api/customers
func (h *CustomerHandler) Create(c echo.Context) error {
	var req ports.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	customer, err := h.customerService.Create(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create customer failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, customer)
}

// Update handles PUT /api/customers/:id
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c, "customer")
	if err != nil {
		return err
	}

	var req ports.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	customer, err := h.customerService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, entities.ErrCustomerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Customer not found")
		}
		h.logger.Error("Update customer failed", "error", err, "customer_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/:id and cascades to appointments
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "customer")
	if err != nil {
		return err
	}

	if err := h.customerService.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete customer failed", "error", err, "customer_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
