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

type NoticeHandler struct {
	cmds commands.NoticeCommands
	q    queries.NoticeQueries
}

func NewNoticeHandler(cmds commands.NoticeCommands, q queries.NoticeQueries) *NoticeHandler {
	return &NoticeHandler{cmds: cmds, q: q}
}

// @Summary List notices
// @Description Notices newest first, optionally filtered by type and message text
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param type query []string false "general or important" collectionFormat(multi)
// @Param q query string false "Case-insensitive search"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200, default 50)"
// @Success 200 {object} resdto.NoticeListResponse
// @Failure 400 {object} httperr.Response
// @Router /notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
	var query reqdto.ListNoticesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notice type", nil)
		return
	}

	items, next, err := h.q.ListNotices(c.Request.Context(), filter, query.ToCursor(), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromNoticeList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create notice
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateNoticeRequest true "Notice"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	adminID, _, ok := currentIdentity(c)
	if !ok {
		return
	}
	var req reqdto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateNotice(c.Request.Context(), adminID, req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update notice
// @Description Partial update; omitted fields keep their values
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Param request body reqdto.UpdateNoticeRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/notices/{id} [patch]
func (h *NoticeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	adminID, _, ok := currentIdentity(c)
	if !ok {
		return
	}
	var req reqdto.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Nothing to update", nil)
		return
	}

	if err := h.cmds.UpdateNotice(c.Request.Context(), adminID, id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete notice
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/notices/{id} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	adminID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteNotice(c.Request.Context(), adminID, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
