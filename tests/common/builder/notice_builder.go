//go:build unit || e2e

package builder

import (
	"time"

	"gas-booking/internal/domain/notice"
	reqdto "gas-booking/internal/handler/dto/request"
	"gas-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type NoticeBuilder struct {
	ID        uuid.UUID
	Message   string
	Type      notice.Type
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

func NewNoticeBuilder() *NoticeBuilder {
	return &NoticeBuilder{
		ID:        uuid.New(),
		Message:   "Deliveries are paused on Sunday",
		Type:      notice.TypeGeneral,
		CreatedBy: uuid.New(),
		CreatedAt: fixedNow,
	}
}

func (n *NoticeBuilder) With(mutate func(*NoticeBuilder)) *NoticeBuilder {
	mutate(n)
	return n
}

func (n *NoticeBuilder) BuildDomain() *notice.Notice {
	msg, err := notice.NewMessage(n.Message)
	if err != nil {
		panic(err)
	}
	return notice.ReconstructNotice(n.ID, msg, n.Type, n.CreatedBy, n.CreatedAt, n.CreatedAt)
}

func (n *NoticeBuilder) BuildView() *queries.NoticeView {
	return &queries.NoticeView{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.CreatedAt,
	}
}

func (n *NoticeBuilder) BuildCreateRequestDTO() reqdto.CreateNoticeRequest {
	return reqdto.CreateNoticeRequest{
		Message: n.Message,
		Type:    string(n.Type),
	}
}
