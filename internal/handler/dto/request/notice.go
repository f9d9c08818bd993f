package request

import (
	"gas-booking/internal/domain/notice"
	"gas-booking/internal/pkg/patch"
	"gas-booking/internal/usecase/commands"
	"gas-booking/internal/usecase/queries"
)

type CreateNoticeRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
	Type    string `json:"type" binding:"omitempty,oneof=general important"`
}

func (r *CreateNoticeRequest) ToCommand() commands.CreateNoticeRequest {
	return commands.CreateNoticeRequest{Message: r.Message, Type: r.Type}
}

type UpdateNoticeRequest struct {
	Message *string `json:"message" binding:"omitempty,max=2000"`
	Type    *string `json:"type" binding:"omitempty,oneof=general important"`
}

func (r *UpdateNoticeRequest) IsEmpty() bool {
	return patch.Empty(r.Message, r.Type)
}

func (r *UpdateNoticeRequest) ToCommand() commands.UpdateNoticeRequest {
	return commands.UpdateNoticeRequest{Message: r.Message, Type: r.Type}
}

type ListNoticesQuery struct {
	PageQuery
	Types  []string `form:"type"`
	Search string   `form:"q" binding:"omitempty,max=200"`
}

func (q ListNoticesQuery) ToFilter() (queries.NoticeFilter, error) {
	filter := queries.NoticeFilter{Search: q.Search}
	for _, raw := range q.Types {
		t, err := notice.ParseType(raw)
		if err != nil {
			return queries.NoticeFilter{}, err
		}
		filter.Types = append(filter.Types, t)
	}
	return filter, nil
}

type ListNotificationsQuery struct {
	PageQuery
	Search string `form:"q" binding:"omitempty,max=200"`
}
