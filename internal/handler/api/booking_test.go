//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gas-booking/internal/domain/booking"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/handler/api"
	resdto "gas-booking/internal/handler/dto/response"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/errs"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
	adminID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.adminID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	bookings := s.router.Group("/bookings", fakeAuth(s.userID, user.RoleUser))
	bookings.POST("", h.Create)
	bookings.GET("", h.ListMine)
	bookings.GET("/quota", h.Quota)
	bookings.GET("/:id", h.Get)
	bookings.POST("/:id/cancel", h.Cancel)

	admin := s.router.Group("/admin/bookings", fakeAuth(s.adminID, user.RoleAdmin))
	admin.GET("/pending", h.ListPending)
	admin.POST("/:id/approve", h.Approve)
	admin.POST("/:id/reject", h.Reject)
	admin.POST("/:id/undo-rejection", h.UndoRejection)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().WithQuantity(2).BuildCreateRequestDTO()

	s.Run("success: returns 201 with quota usage", func() {
		result := &commands.BookCylinderResult{
			BookingID:      uuid.New(),
			Quantity:       2,
			Status:         booking.StatusPending,
			QuotaUsed:      12,
			QuotaRemaining: 0,
		}
		s.mockCommands.EXPECT().BookCylinder(gomock.Any(), s.userID, 2).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var response resdto.BookCylinderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.BookingID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal(12, response.QuotaUsed)
		s.Equal(0, response.QuotaRemaining)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing quantity", mutate: testutil.Field("quantity", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
			{name: "string quantity", mutate: testutil.Field("quantity", "two")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []errorCase{
			{name: "quota exceeded", err: errs.Wrap(booking.ErrQuotaExceeded, "requested 3, used 10 of 12"), expectStatus: http.StatusUnprocessableEntity, expectMsg: "Annual cylinder quota exceeded"},
			{name: "rate limited", err: commands.ErrRateLimited, expectStatus: http.StatusTooManyRequests, expectMsg: "Too many requests"},
			{name: "invalid input", err: commands.ErrInvalidInput, expectStatus: http.StatusBadRequest, expectMsg: "Invalid input"},
			{name: "marked invalid quantity", err: errs.Mark(booking.ErrInvalidQuantity, commands.ErrInvalidInput), expectStatus: http.StatusBadRequest, expectMsg: "Invalid input"},
			{name: "internal", err: errors.New("boom"), expectStatus: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookCylinder(gomock.Any(), s.userID, 2).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectMsg)
			})
		}
	})

	s.Run("error: quota detail is exposed", func() {
		s.mockCommands.EXPECT().BookCylinder(gomock.Any(), s.userID, 2).
			Return(nil, errs.Wrap(booking.ErrQuotaExceeded, "requested 3, used 10 of 12"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
		s.Contains(rec.Body.String(), "used 10 of 12")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: passes cursor and limit through", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithUserID(s.userID).BuildView(),
			builder.NewBookingBuilder().WithUserID(s.userID).Approved(s.adminID).BuildView(),
		}
		s.mockQueries.EXPECT().
			ListMyBookings(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 2).
			Return(views, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=abc&limit=2", nil, bearer)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("approved", response.Items[1].Status)
		s.Equal("next", response.NextCursor)
	})

	s.Run("success: first page has no cursor", func() {
		s.mockQueries.EXPECT().ListMyBookings(gomock.Any(), s.userID, nil, 0).Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, bearer)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Items)
		s.Empty(response.NextCursor)
	})

	s.Run("error: limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=201", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: malformed cursor", func() {
		s.mockQueries.EXPECT().ListMyBookings(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errs.New("invalid cursor encoding"), queries.ErrInvalidCursor))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=%21%21", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *BookingHandlerTestSuite) TestQuota() {
	s.mockQueries.EXPECT().QuotaUsage(gomock.Any(), s.userID).
		Return(&queries.QuotaUsageView{Year: 2025, Limit: 12, Used: 5, Remaining: 7}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/quota", nil, bearer)

	var response resdto.QuotaResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(2025, response.Year)
	s.Equal(7, response.Remaining)
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID, s.userID, user.RoleUser).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, bearer)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("unpaid", response.PaymentStatus)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []errorCase{
			{name: "not found", err: queries.ErrBookingNotFound, expectStatus: http.StatusNotFound, expectMsg: "Booking not found"},
			{name: "someone else's", err: queries.ErrBookingAccess, expectStatus: http.StatusForbidden, expectMsg: "Booking belongs to another user"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID, s.userID, user.RoleUser).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.userID, id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, bearer)
		httptest.AssertNoContent(s.T(), rec)
	})

	s.Run("error: maps usecase errors", func() {
		cases := []errorCase{
			{name: "window expired", err: errs.Mark(booking.ErrCancelWindowExpired, commands.ErrCancelWindowExpired), expectStatus: http.StatusConflict, expectMsg: "Cancellation window expired"},
			{name: "not owner", err: errs.Mark(booking.ErrNotOwner, commands.ErrBookingNotOwned), expectStatus: http.StatusForbidden, expectMsg: "Booking belongs to another user"},
			{name: "not pending", err: errs.Mark(booking.ErrInvalidTransition, commands.ErrInvalidStateTransition), expectStatus: http.StatusConflict, expectMsg: "Invalid state transition"},
			{name: "not found", err: errs.Mark(infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), commands.ErrBookingNotFound), expectStatus: http.StatusNotFound, expectMsg: "Booking not found"},
			{name: "bare sentinel", err: commands.ErrCancelWindowExpired, expectStatus: http.StatusConflict, expectMsg: "Cancellation window expired"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.userID, id).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListPending() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().ListPendingBookings(gomock.Any(), user.RoleAdmin, nil, 0).
			Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/pending", nil, bearer)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})

	s.Run("error: non-admin", func() {
		s.mockQueries.EXPECT().ListPendingBookings(gomock.Any(), user.RoleAdmin, nil, 0).Return(nil, nil, queries.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/pending", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Administrator role required")
	})
}

func (s *BookingHandlerTestSuite) TestDecide() {
	id := uuid.New()

	s.Run("approve: 204", func() {
		s.mockCommands.EXPECT().SetBookingStatus(gomock.Any(), s.adminID, user.RoleAdmin, id, true).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/approve", nil, bearer)
		httptest.AssertNoContent(s.T(), rec)
	})

	s.Run("reject: 204", func() {
		s.mockCommands.EXPECT().SetBookingStatus(gomock.Any(), s.adminID, user.RoleAdmin, id, false).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/reject", nil, bearer)
		httptest.AssertNoContent(s.T(), rec)
	})

	s.Run("error: maps usecase errors", func() {
		cases := []errorCase{
			{name: "already decided", err: errs.Mark(booking.ErrInvalidTransition, commands.ErrInvalidStateTransition), expectStatus: http.StatusConflict, expectMsg: "Invalid state transition"},
			{name: "forbidden", err: commands.ErrForbidden, expectStatus: http.StatusForbidden, expectMsg: "Administrator role required"},
			{name: "rate limited", err: commands.ErrRateLimited, expectStatus: http.StatusTooManyRequests, expectMsg: "Too many requests"},
			{name: "not found", err: errs.Mark(infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), commands.ErrBookingNotFound), expectStatus: http.StatusNotFound, expectMsg: "Booking not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetBookingStatus(gomock.Any(), s.adminID, user.RoleAdmin, id, true).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/approve", nil, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestUndoRejection() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String() + "/undo-rejection"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().UndoRejection(gomock.Any(), s.adminID, user.RoleAdmin, id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, bearer)
		httptest.AssertNoContent(s.T(), rec)
	})

	s.Run("error: window elapsed", func() {
		s.mockCommands.EXPECT().UndoRejection(gomock.Any(), s.adminID, user.RoleAdmin, id).Return(commands.ErrUndoUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "Undo is no longer available")
	})
}
