package response

import (
	"time"

	"gas-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NoticeResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoticeListResponse struct {
	Items      []NoticeResponse `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Items      []NotificationResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromNoticeList(views []*queries.NoticeView, next *queries.Cursor) (*NoticeListResponse, error) {
	items := make([]NoticeResponse, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	return &NoticeListResponse{Items: items, NextCursor: nextCursor(next)}, nil
}

func FromNotificationList(views []*queries.NotificationView, next *queries.Cursor) (*NotificationListResponse, error) {
	items := make([]NotificationResponse, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	return &NotificationListResponse{Items: items, NextCursor: nextCursor(next)}, nil
}
