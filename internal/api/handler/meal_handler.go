package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/ports"
)

// MealHandler handles HTTP requests for the weekly meal menu.
type MealHandler struct {
	service ports.MenuService
}

func NewMealHandler(service ports.MenuService) *MealHandler {
	return &MealHandler{service: service}
}

type upsertMenuDayRequest struct {
	Weekday   string `json:"weekday"   validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Breakfast string `json:"breakfast" validate:"required"`
	Lunch     string `json:"lunch"     validate:"required"`
	Dinner    string `json:"dinner"    validate:"required"`
}

// Week handles GET /warden/menu and GET /guest/menu.
//
// @Summary      Get the weekly menu
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.MenuDay
// @Failure      401  {object}  errorResponse
// @Router       /warden/menu [get]
func (h *MealHandler) Week(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	week, err := h.service.Week(c.Request().Context(), pgID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, week)
}

// WeekPublic handles GET /public/menu — the unauthenticated menu view.
//
// @Summary      Get a property's weekly menu
// @Tags         meals
// @Produce      json
// @Param        pg_id  query     string  true  "Property ID"
// @Success      200    {array}   domain.MenuDay
// @Failure      400    {object}  errorResponse
// @Router       /public/menu [get]
func (h *MealHandler) WeekPublic(c echo.Context) error {
	pgID := c.QueryParam("pg_id")
	if pgID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pg_id is required")
	}

	week, err := h.service.Week(c.Request().Context(), pgID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, week)
}

// UpsertDay handles PUT /warden/menu.
//
// @Summary      Set the menu for one weekday
// @Tags         meals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upsertMenuDayRequest  true  "Menu for the day"
// @Success      200   {object}  domain.MenuDay
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /warden/menu [put]
func (h *MealHandler) UpsertDay(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var req upsertMenuDayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	day, err := h.service.UpsertDay(c.Request().Context(), ports.UpsertMenuDayInput{
		PGID:      pgID,
		Weekday:   req.Weekday,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, day)
}
