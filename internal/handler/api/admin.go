package api

import (
	"net/http"

	resdto "gas-booking/internal/handler/dto/response"
	"gas-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	users     queries.UserQueries
	dashboard queries.DashboardQueries
}

func NewAdminHandler(users queries.UserQueries, dashboard queries.DashboardQueries) *AdminHandler {
	return &AdminHandler{users: users, dashboard: dashboard}
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	_, role, ok := currentIdentity(c)
	if !ok {
		return
	}
	views, err := h.users.ListUsers(c.Request.Context(), role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Dashboard statistics
// @Description Booking counts per status, active users, and recorded vs refunded payment totals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	_, role, ok := currentIdentity(c)
	if !ok {
		return
	}
	stats, err := h.dashboard.Stats(c.Request.Context(), role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}
