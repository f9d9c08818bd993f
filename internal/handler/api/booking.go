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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book cylinders
// @Description Request cylinders against the caller's annual quota. The booking starts pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookCylinderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.BookCylinder(c.Request.Context(), userID, req.Quantity)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookCylinderResult(result))
}

// @Summary List my bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200, default 20)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, next, err := h.q.ListMyBookings(c.Request.Context(), userID, page.ToCursor(), page.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Quota usage
// @Description Cylinders used and remaining in the current calendar year
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QuotaResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/quota [get]
func (h *BookingHandler) Quota(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		return
	}
	usage, err := h.q.QuotaUsage(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotaUsageView(usage))
}

// @Summary Get booking
// @Description Get a booking by ID. Owners see their own bookings; admins see all.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	actorID, role, ok := currentIdentity(c)
	if !ok {
		return
	}

	view, err := h.q.GetBooking(c.Request.Context(), id, actorID, role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel an own pending booking within two hours of creation
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.cmds.CancelBooking(c.Request.Context(), userID, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List pending bookings
// @Description Pending bookings awaiting review, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200, default 20)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings/pending [get]
func (h *BookingHandler) ListPending(c *gin.Context) {
	_, role, ok := currentIdentity(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, next, err := h.q.ListPendingBookings(c.Request.Context(), role, page.ToCursor(), page.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Approve booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /admin/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	h.setStatus(c, true)
}

// @Summary Reject booking
// @Description Reject a pending booking. The same admin may undo it for two minutes.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /admin/bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	h.setStatus(c, false)
}

// @Summary Undo rejection
// @Description Return a rejected booking to pending
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /admin/bookings/{id}/undo-rejection [post]
func (h *BookingHandler) UndoRejection(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	adminID, role, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.cmds.UndoRejection(c.Request.Context(), adminID, role, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) setStatus(c *gin.Context, approve bool) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	adminID, role, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.cmds.SetBookingStatus(c.Request.Context(), adminID, role, id, approve); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
