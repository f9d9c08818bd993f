package api

import (
	"net/http"

	reqdto "gas-booking/internal/handler/dto/request"
	resdto "gas-booking/internal/handler/dto/response"
	"gas-booking/internal/handler/httperr"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Record payment
// @Description Record a payment against an own approved booking
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} resdto.RecordPaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings/{id}/payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, _, ok := currentIdentity(c)
	if !ok {
		return
	}
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.RecordPayment(c.Request.Context(), userID, req.ToCommand(bookingID))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRecordPaymentResult(result))
}

// @Summary List my payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200, default 20)"
// @Success 200 {object} resdto.PaymentListResponse
// @Failure 400 {object} httperr.Response
// @Router /payments [get]
func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, next, err := h.q.ListMyPayments(c.Request.Context(), userID, page.ToCursor(), page.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentList(items, next))
}

// @Summary Refund payment
// @Description Mark a recorded payment as refunded. The booking stays paid.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	adminID, role, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.cmds.RefundPayment(c.Request.Context(), adminID, role, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
