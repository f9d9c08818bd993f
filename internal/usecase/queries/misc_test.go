//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gas-booking/internal/domain/notice"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/infra"
	"gas-booking/internal/usecase/queries"
	"gas-booking/tests/common/builder"
	queriesmock "gas-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNoticeQueries_ListNotices(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockNoticeReadStore(ctrl)
	q := queries.NewNoticeQueries(store)

	rows := []*queries.NoticeView{builder.NewNoticeBuilder().BuildView()}
	store.EXPECT().
		List(gomock.Any(), []string{"important"}, "delay", queries.Keyset{Limit: queries.DefaultNoticeLimit + 1}).
		Return(rows, nil)

	got, next, err := q.ListNotices(context.Background(), queries.NoticeFilter{
		Types:  []notice.Type{notice.TypeImportant},
		Search: "  delay ",
	}, nil, 0)

	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, rows, got)
}

func TestNotificationQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockNotificationReadStore(ctrl)
	q := queries.NewNotificationQueries(store)
	userID := uuid.New()

	store.EXPECT().ListByUser(gomock.Any(), userID, "", queries.Keyset{Limit: queries.DefaultListLimit + 1}).
		Return([]*queries.NotificationView{}, nil)
	store.EXPECT().CountUnread(gomock.Any(), userID).Return(int64(3), nil)

	items, next, err := q.ListNotifications(context.Background(), userID, " ", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Nil(t, next)

	n, err := q.UnreadCount(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestUserQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	q := queries.NewUserQueries(store)

	active := builder.NewUserBuilder().BuildReadModel()
	inactive := builder.NewUserBuilder().AsInactive().BuildReadModel()
	missing := uuid.New()

	store.EXPECT().FindByID(gomock.Any(), active.ID).Return(active, nil)
	store.EXPECT().FindByID(gomock.Any(), inactive.ID).Return(inactive, nil)
	store.EXPECT().FindByID(gomock.Any(), missing).Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	got, err := q.GetCurrentUser(context.Background(), active.ID)
	require.NoError(t, err)
	assert.Equal(t, active, got)

	_, err = q.GetCurrentUser(context.Background(), inactive.ID)
	assert.ErrorIs(t, err, queries.ErrUserInactive)

	_, err = q.GetCurrentUser(context.Background(), missing)
	assert.ErrorIs(t, err, queries.ErrUserNotFound)

	_, err = q.ListUsers(context.Background(), user.RoleUser)
	assert.ErrorIs(t, err, queries.ErrForbidden)

	store.EXPECT().ListAll(gomock.Any()).Return([]*queries.AuthorizedUserView{active}, nil)
	all, err := q.ListUsers(context.Background(), user.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDashboardQueries_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockDashboardReadStore(ctrl)
	q := queries.NewDashboardQueries(store)

	_, err := q.Stats(context.Background(), user.RoleUser)
	assert.ErrorIs(t, err, queries.ErrForbidden)

	store.EXPECT().CountBookingsByStatus(gomock.Any()).Return(map[string]int64{"pending": 4, "approved": 9}, nil)
	store.EXPECT().CountActiveUsers(gomock.Any()).Return(int64(21), nil)
	store.EXPECT().PaymentTotalsByStatus(gomock.Any()).Return(map[string]queries.PaymentTotals{
		"recorded": {Count: 8, TotalCents: 880000},
		"refunded": {Count: 1, TotalCents: 110000},
	}, nil)

	got, err := q.Stats(context.Background(), user.RoleAdmin)
	require.NoError(t, err)

	want := &queries.DashboardStats{
		BookingsByStatus: map[string]int64{"pending": 4, "approved": 9},
		PendingCount:     4,
		ActiveUsers:      21,
		Recorded:         queries.PaymentTotals{Count: 8, TotalCents: 880000},
		Refunded:         queries.PaymentTotals{Count: 1, TotalCents: 110000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}
