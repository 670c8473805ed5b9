package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/ports"
)

// MessageHandler handles the warden-guest conversation routes. The same
// handler serves both audiences; the caller is always one participant.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	ToID string `json:"to_id" validate:"required"`
	Body string `json:"body"  validate:"required"`
}

// Send handles POST /messages.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	msg, err := h.service.Send(c.Request().Context(), ports.SendMessageInput{
		FromID: sess.Identity.ID,
		ToID:   req.ToID,
		Body:   req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Thread handles GET /messages/:other_id — the conversation with one
// participant, oldest first.
//
// @Summary      Get a conversation
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        other_id  path      string  true   "Other participant ID"
// @Param        limit     query     int     false  "Max messages"
// @Success      200       {array}   domain.Message
// @Failure      401       {object}  errorResponse
// @Router       /messages/{other_id} [get]
func (h *MessageHandler) Thread(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	msgs, err := h.service.Thread(c.Request().Context(), sess.Identity.ID, c.Param("other_id"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Threads handles GET /messages — summaries of every conversation the caller
// participates in, most recent first.
//
// @Summary      List conversations
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.ThreadSummary
// @Failure      401  {object}  errorResponse
// @Router       /messages [get]
func (h *MessageHandler) Threads(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	threads, err := h.service.Threads(c.Request().Context(), sess.Identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, threads)
}
