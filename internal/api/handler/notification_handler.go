package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// NotificationDispatcher is the interface the handler uses to queue deliveries.
type NotificationDispatcher interface {
	Enqueue(n ports.NotificationInput)
	EnqueueBatch(batch []ports.NotificationInput)
}

// NotificationHandler handles notification sending and the guest inbox.
type NotificationHandler struct {
	service    ports.NotificationService
	dispatcher NotificationDispatcher
}

func NewNotificationHandler(service ports.NotificationService, dispatcher NotificationDispatcher) *NotificationHandler {
	return &NotificationHandler{service: service, dispatcher: dispatcher}
}

type sendNotificationRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Title       string `json:"title"        validate:"required"`
	Body        string `json:"body"         validate:"required"`
	Severity    string `json:"severity"     validate:"omitempty,oneof=info warning urgent"`
}

type broadcastRequest struct {
	Title    string `json:"title"    validate:"required"`
	Body     string `json:"body"     validate:"required"`
	Severity string `json:"severity" validate:"omitempty,oneof=info warning urgent"`
}

type inboxQuery struct {
	pageQuery
	UnreadOnly bool `query:"unread_only"`
}

type notificationListResponse struct {
	Items []*domain.Notification `json:"items"`
	Total int64                  `json:"total"`
}

// Send handles POST /warden/notifications — queues one delivery, returns 202.
//
// @Summary      Send a notification to one resident
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendNotificationRequest  true  "Notification"
// @Success      202   {object}  acceptedResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /warden/notifications [post]
func (h *NotificationHandler) Send(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(ports.NotificationInput{
		PGID:        pgID,
		RecipientID: req.RecipientID,
		Title:       req.Title,
		Body:        req.Body,
		Severity:    req.Severity,
	})
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "notification accepted"})
}

// Broadcast handles POST /warden/notifications/broadcast — fans the message
// out to every active resident and queues the deliveries, returns 202.
//
// @Summary      Broadcast a notification to all active residents
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      broadcastRequest  true  "Notification"
// @Success      202   {object}  acceptedResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /warden/notifications/broadcast [post]
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var req broadcastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	inputs, err := h.service.Fanout(c.Request().Context(), pgID, req.Title, req.Body, req.Severity)
	if err != nil {
		return err
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "broadcast accepted",
		Count:   len(inputs),
	})
}

// Inbox handles GET /guest/notifications — the caller's own inbox.
//
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        page         query     int   false  "Page (1-based)"
// @Param        limit        query     int   false  "Page size"
// @Param        unread_only  query     bool  false  "Only unread"
// @Success      200          {object}  notificationListResponse
// @Failure      401          {object}  errorResponse
// @Router       /guest/notifications [get]
func (h *NotificationHandler) Inbox(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var q inboxQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	items, total, err := h.service.List(c.Request().Context(), ports.ListNotificationsFilter{
		RecipientID: sess.Identity.ID,
		UnreadOnly:  q.UnreadOnly,
		Page:        q.Page,
		Limit:       q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationListResponse{Items: items, Total: total})
}

// MarkRead handles POST /guest/notifications/:id/read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  domain.Notification
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /guest/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	n, err := h.service.MarkRead(c.Request().Context(), c.Param("id"), sess.Identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}
