package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// ResidentHandler handles HTTP requests for resident management.
type ResidentHandler struct {
	service ports.ResidentService
}

func NewResidentHandler(service ports.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

type checkInRequest struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required"`
	RoomID   string `json:"room_id"`
	JoinDate string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
}

type updateResidentRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
}

type checkOutRequest struct {
	EndDate string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type listResidentsQuery struct {
	pageQuery
	Status string `query:"status"`
	Search string `query:"search"`
}

type residentListResponse struct {
	Items []*domain.Resident `json:"items"`
	Meta  pageMeta           `json:"meta"`
}

// parseDate parses a YYYY-MM-DD body field, defaulting to now when empty.
func parseDate(value string) time.Time {
	if value == "" {
		return time.Now().UTC()
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Now().UTC()
	}
	return t
}

// CheckIn handles POST /warden/residents.
//
// @Summary      Check a resident in
// @Tags         residents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkInRequest  true  "Resident details"
// @Success      201   {object}  domain.Resident
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /warden/residents [post]
func (h *ResidentHandler) CheckIn(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resident, err := h.service.CheckIn(c.Request().Context(), ports.CheckInInput{
		PGID:     pgID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		RoomID:   req.RoomID,
		JoinDate: parseDate(req.JoinDate),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resident)
}

// Get handles GET /warden/residents/:id.
//
// @Summary      Get a resident
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resident ID"
// @Success      200  {object}  domain.Resident
// @Failure      404  {object}  errorResponse
// @Router       /warden/residents/{id} [get]
func (h *ResidentHandler) Get(c echo.Context) error {
	resident, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// List handles GET /warden/residents.
//
// @Summary      List residents
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        status  query     string  false  "Filter by status"
// @Param        search  query     string  false  "Partial match on name or email"
// @Success      200     {object}  residentListResponse
// @Failure      401     {object}  errorResponse
// @Router       /warden/residents [get]
func (h *ResidentHandler) List(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var q listResidentsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.service.List(c.Request().Context(), ports.ListResidentsFilter{
		PGID:   pgID,
		Status: q.Status,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, residentListResponse{
		Items: result.Items,
		Meta: pageMeta{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Update handles PUT /warden/residents/:id.
//
// @Summary      Update a resident
// @Tags         residents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Resident ID"
// @Param        body  body      updateResidentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Resident
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /warden/residents/{id} [put]
func (h *ResidentHandler) Update(c echo.Context) error {
	var req updateResidentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resident, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateResidentInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// CheckOut handles POST /warden/residents/:id/check-out.
//
// @Summary      Check a resident out
// @Tags         residents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true   "Resident ID"
// @Param        body  body      checkOutRequest  false  "End date (defaults to today)"
// @Success      200   {object}  domain.Resident
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /warden/residents/{id}/check-out [post]
func (h *ResidentHandler) CheckOut(c echo.Context) error {
	var req checkOutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resident, err := h.service.CheckOut(c.Request().Context(), c.Param("id"), parseDate(req.EndDate))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}
