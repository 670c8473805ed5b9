package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// PropertyHandler handles the super-admin portfolio routes.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type createPropertyRequest struct {
	Name       string `json:"name"        validate:"required"`
	City       string `json:"city"        validate:"required"`
	AdminEmail string `json:"admin_email" validate:"required,email"`
}

type updatePropertyRequest struct {
	Name       *string `json:"name"`
	City       *string `json:"city"`
	AdminEmail *string `json:"admin_email" validate:"omitempty,email"`
	Status     *string `json:"status"      validate:"omitempty,oneof=active suspended"`
}

// Create handles POST /super-admin/properties.
//
// @Summary      Register a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  domain.Property
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /super-admin/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	property, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Name:       req.Name,
		City:       req.City,
		AdminEmail: req.AdminEmail,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, property)
}

// Get handles GET /super-admin/properties/:id.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  errorResponse
// @Router       /super-admin/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// List handles GET /super-admin/properties.
//
// @Summary      List all properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Property
// @Failure      401  {object}  errorResponse
// @Router       /super-admin/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// Update handles PUT /super-admin/properties/:id.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property ID"
// @Param        body  body      updatePropertyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Property
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /super-admin/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input := ports.UpdatePropertyInput{
		Name:       req.Name,
		City:       req.City,
		AdminEmail: req.AdminEmail,
	}
	if req.Status != nil {
		status := domain.PropertyStatus(*req.Status)
		input.Status = &status
	}

	property, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// Overview handles GET /super-admin/overview — portfolio-wide counts.
//
// @Summary      Portfolio overview
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.PropertyOverview
// @Failure      401  {object}  errorResponse
// @Router       /super-admin/overview [get]
func (h *PropertyHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
