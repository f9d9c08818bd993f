//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"gas-booking/internal/domain/notice"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/handler/api"
	resdto "gas-booking/internal/handler/dto/response"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"
	"gas-booking/tests/common/builder"
	"gas-booking/tests/common/httptest"
	"gas-booking/tests/common/testutil"
	commandsmock "gas-booking/tests/mock/commands"
	queriesmock "gas-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NoticeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNoticeCommands
	mockQueries  *queriesmock.MockNoticeQueries
	adminID      uuid.UUID
}

func (s *NoticeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNoticeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNoticeQueries(s.mockCtrl)
	s.adminID = uuid.New()

	h := api.NewNoticeHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/notices", h.List)
	admin := s.router.Group("/admin/notices", fakeAuth(s.adminID, user.RoleAdmin))
	admin.POST("", h.Create)
	admin.PATCH("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
}

func (s *NoticeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNoticeHandlerSuite(t *testing.T) {
	suite.Run(t, new(NoticeHandlerTestSuite))
}

func (s *NoticeHandlerTestSuite) TestList() {
	s.Run("success: filters by type and search", func() {
		view := builder.NewNoticeBuilder().BuildView()
		filter := queries.NoticeFilter{Types: []notice.Type{notice.TypeImportant}, Search: "outage"}
		s.mockQueries.EXPECT().ListNotices(gomock.Any(), filter, nil, 0).
			Return([]*queries.NoticeView{view}, &queries.Cursor{After: "more"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notices?type=important&q=outage", nil, "")

		var response resdto.NoticeListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(view.ID, response.Items[0].ID)
		s.Equal(view.Message, response.Items[0].Message)
		s.Equal("more", response.NextCursor)
	})

	s.Run("error: unknown type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notices?type=urgent", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid notice type")
	})

	s.Run("error: search too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notices?q="+strings.Repeat("x", 201), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

func (s *NoticeHandlerTestSuite) TestCreate() {
	reqBody := builder.NewNoticeBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateNotice(gomock.Any(), s.adminID, reqBody.ToCommand()).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/notices", reqBody, bearer)

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing message", mutate: testutil.Field("message", nil)},
			{name: "message too long", mutate: testutil.Field("message", strings.Repeat("m", 2001))},
			{name: "unknown type", mutate: testutil.Field("type", "urgent")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/notices", testutil.DtoMap(s.T(), reqBody, tc.mutate), bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: forbidden", func() {
		s.mockCommands.EXPECT().CreateNotice(gomock.Any(), s.adminID, gomock.Any()).Return(uuid.Nil, commands.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/notices", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Administrator role required")
	})
}

func (s *NoticeHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/admin/notices/" + id.String()

	s.Run("success: partial update", func() {
		msg := "Depot closed on Sunday"
		s.mockCommands.EXPECT().UpdateNotice(gomock.Any(), s.adminID, id, commands.UpdateNoticeRequest{Message: &msg}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"message": msg}, bearer)
		httptest.AssertNoContent(s.T(), rec)
	})

	s.Run("error: empty patch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Nothing to update")
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().UpdateNotice(gomock.Any(), s.adminID, id, gomock.Any()).Return(commands.ErrNoticeNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"type": "general"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Notice not found")
	})
}

func (s *NoticeHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/admin/notices/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeleteNotice(gomock.Any(), s.adminID, id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, bearer)
		httptest.AssertNoContent(s.T(), rec)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/notices/42", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
