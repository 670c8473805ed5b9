package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for rent bookkeeping.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type recordPaymentRequest struct {
	ResidentID string  `json:"resident_id" validate:"required"`
	Amount     float64 `json:"amount"      validate:"required,gt=0"`
	Currency   string  `json:"currency"    validate:"omitempty,len=3"`
	Month      string  `json:"month"       validate:"required,datetime=2006-01"`
}

type markPaidRequest struct {
	Method string `json:"method" validate:"required,oneof=cash upi bank_transfer card"`
}

type listPaymentsQuery struct {
	pageQuery
	ResidentID string `query:"resident_id"`
	Status     string `query:"status"`
	Month      string `query:"month"`
}

type paymentListResponse struct {
	Items []*domain.Payment `json:"items"`
	Meta  pageMeta          `json:"meta"`
}

// Record handles POST /pg-admin/payments.
//
// @Summary      Record a rent charge
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Charge details"
// @Success      201   {object}  domain.Payment
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /pg-admin/payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	payment, err := h.service.Record(c.Request().Context(), ports.RecordPaymentInput{
		PGID:       pgID,
		ResidentID: req.ResidentID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Month:      req.Month,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// Get handles GET /pg-admin/payments/:id.
//
// @Summary      Get a payment record
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  domain.Payment
// @Failure      404  {object}  errorResponse
// @Router       /pg-admin/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	payment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// List handles GET /pg-admin/payments.
//
// @Summary      List payment records
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        page         query     int     false  "Page (1-based)"
// @Param        limit        query     int     false  "Page size"
// @Param        resident_id  query     string  false  "Scope to one resident"
// @Param        status       query     string  false  "Filter by status"
// @Param        month        query     string  false  "Filter by month (YYYY-MM)"
// @Success      200          {object}  paymentListResponse
// @Failure      401          {object}  errorResponse
// @Router       /pg-admin/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	pgID, err := ctxPGID(c)
	if err != nil {
		return err
	}

	var q listPaymentsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.service.List(c.Request().Context(), ports.ListPaymentsFilter{
		PGID:       pgID,
		ResidentID: q.ResidentID,
		Status:     q.Status,
		Month:      q.Month,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentListResponse{
		Items: result.Items,
		Meta: pageMeta{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// MarkPaid handles POST /pg-admin/payments/:id/pay.
//
// @Summary      Settle a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Payment ID"
// @Param        body  body      markPaidRequest  true  "Settlement method"
// @Success      200   {object}  domain.Payment
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /pg-admin/payments/{id}/pay [post]
func (h *PaymentHandler) MarkPaid(c echo.Context) error {
	var req markPaidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	payment, err := h.service.MarkPaid(c.Request().Context(), c.Param("id"), req.Method)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// MyPayments handles GET /guest/payments — the guest's own payment history.
//
// @Summary      List the caller's payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  paymentListResponse
// @Failure      401    {object}  errorResponse
// @Router       /guest/payments [get]
func (h *PaymentHandler) MyPayments(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var q pageQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.service.List(c.Request().Context(), ports.ListPaymentsFilter{
		PGID:       sess.Identity.PGID,
		ResidentID: sess.Identity.ID,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentListResponse{
		Items: result.Items,
		Meta: pageMeta{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}
