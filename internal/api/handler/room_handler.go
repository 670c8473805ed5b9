package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// RoomHandler handles HTTP requests for room management.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

type createRoomRequest struct {
	Number      string   `json:"number"       validate:"required"`
	Floor       int      `json:"floor"        validate:"gte=0"`
	Type        string   `json:"type"         validate:"required,oneof=single double triple dorm"`
	Capacity    int      `json:"capacity"     validate:"required,gt=0"`
	RentMonthly float64  `json:"rent_monthly" validate:"required,gt=0"`
	Amenities   []string `json:"amenities"`
}

type updateRoomRequest struct {
	Type        *string  `json:"type"         validate:"omitempty,oneof=single double triple dorm"`
	Capacity    *int     `json:"capacity"     validate:"omitempty,gt=0"`
	RentMonthly *float64 `json:"rent_monthly" validate:"omitempty,gt=0"`
	Amenities   []string `json:"amenities"`
	Status      *string  `json:"status"       validate:"omitempty,oneof=available occupied maintenance"`
}

type listRoomsQuery struct {
	pageQuery
	Status string `query:"status"`
	Floor  *int   `query:"floor"`
	Search string `query:"search"`
}

type roomListResponse struct {
	Items []*domain.Room `json:"items"`
	Meta  pageMeta       `json:"meta"`
}

// Create handles POST /pg-admin/rooms.
//
// @Summary      Register a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /pg-admin/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	room, err := h.service.Create(c.Request().Context(), ports.CreateRoomInput{
		PGID:        pgID,
		Number:      req.Number,
		Floor:       req.Floor,
		Type:        req.Type,
		Capacity:    req.Capacity,
		RentMonthly: req.RentMonthly,
		Amenities:   req.Amenities,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Get handles GET /pg-admin/rooms/:id.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  errorResponse
// @Router       /pg-admin/rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// List handles GET /pg-admin/rooms.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        status  query     string  false  "Filter by status"
// @Param        floor   query     int     false  "Filter by floor"
// @Param        search  query     string  false  "Partial match on room number"
// @Success      200     {object}  roomListResponse
// @Failure      401     {object}  errorResponse
// @Router       /pg-admin/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var q listRoomsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.service.List(c.Request().Context(), ports.ListRoomsFilter{
		PGID:   pgID,
		Status: q.Status,
		Floor:  q.Floor,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomListResponse{
		Items: result.Items,
		Meta: pageMeta{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Update handles PUT /pg-admin/rooms/:id.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Room ID"
// @Param        body  body      updateRoomRequest  true  "Fields to change"
// @Success      200   {object}  domain.Room
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /pg-admin/rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input := ports.UpdateRoomInput{
		Type:        req.Type,
		Capacity:    req.Capacity,
		RentMonthly: req.RentMonthly,
		Amenities:   req.Amenities,
	}
	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		input.Status = &status
	}

	room, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Assign handles POST /pg-admin/rooms/:id/assign.
//
// @Summary      Claim one bed in a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /pg-admin/rooms/{id}/assign [post]
func (h *RoomHandler) Assign(c echo.Context) error {
	room, err := h.service.Assign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Release handles POST /pg-admin/rooms/:id/release.
//
// @Summary      Release one bed in a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /pg-admin/rooms/{id}/release [post]
func (h *RoomHandler) Release(c echo.Context) error {
	room, err := h.service.Release(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Vacancies handles GET /public/rooms — the public availability view.
//
// @Summary      List available rooms
// @Tags         rooms
// @Produce      json
// @Param        pg_id  query     string  true  "Property ID"
// @Success      200    {array}   ports.RoomVacancy
// @Failure      400    {object}  errorResponse
// @Router       /public/rooms [get]
func (h *RoomHandler) Vacancies(c echo.Context) error {
	pgID := c.QueryParam("pg_id")
	if pgID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pg_id is required")
	}

	vacancies, err := h.service.Vacancies(c.Request().Context(), pgID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vacancies)
}
