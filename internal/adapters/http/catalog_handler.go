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

// CatalogHandler handles service-catalog requests
type CatalogHandler struct {
	catalogService *services.CatalogService
	logger         *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// List handles GET /api/services
func (h *CatalogHandler) List(c echo.Context) error {
	catalog, err := h.catalogService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("List services failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, catalog)
}

// Get handles GET /api/services/:id
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := pathID(c, "service")
	if err != nil {
		return err
	}

	service, err := h.catalogService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Service not found")
		}
		h.logger.Error("Get service failed", "error", err, "service_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, service)
}

// Create handles POST /api/services
func (h *CatalogHandler) Create(c echo.Context) error {
	var req ports.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	service, err := h.catalogService.Create(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create service failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, service)
}

// Update handles PUT /api/services/:id
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := pathID(c, "service")
	if err != nil {
		return err
	}

	var req ports.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	service, err := h.catalogService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, entities.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Service not found")
		}
		h.logger.Error("Update service failed", "error", err, "service_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, service)
}

// Delete handles DELETE /api/services/:id
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "service")
	if err != nil {
		return err
	}

	if err := h.catalogService.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete service failed", "error", err, "service_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
