package repository

import (
	"context"
	"time"

	"gas-booking/internal/domain/notice"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/pgconv"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertNoticeSQL = `
INSERT INTO notices (id, message, type, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	selectNoticeForUpdateSQL = `
SELECT id, message, type, created_by, created_at, updated_at
FROM notices
WHERE id = $1
FOR UPDATE`

	updateNoticeSQL = `
UPDATE notices
SET message = $2, type = $3, updated_at = $4
WHERE id = $1`

	deleteNoticeSQL = `DELETE FROM notices WHERE id = $1`
)

type NoticeRepository struct{}

func NewNoticeRepository() *NoticeRepository {
	return &NoticeRepository{}
}

func (r *NoticeRepository) Create(ctx context.Context, tx shared.DBTX, n *notice.Notice) error {
	_, err := tx.Exec(ctx, insertNoticeSQL,
		n.ID(), n.Message().Value(), n.Type().String(), n.CreatedBy(), n.CreatedAt(), n.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create notice", err)
	}
	return nil
}

func (r *NoticeRepository) FindByIDForUpdate(ctx context.Context, tx shared.DBTX, id uuid.UUID) (*notice.Notice, error) {
	var (
		nid, createdBy       uuid.UUID
		message, typ         string
		createdAt, updatedAt time.Time
	)
	err := tx.QueryRow(ctx, selectNoticeForUpdateSQL, id).Scan(&nid, &message, &typ, &createdBy, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock notice", err)
	}

	msg, err := notice.NewMessage(message)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt notice message", err)
	}
	t, err := notice.ParseType(typ)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt notice type", err)
	}
	return notice.ReconstructNotice(nid, msg, t, createdBy, createdAt, updatedAt), nil
}

func (r *NoticeRepository) Update(ctx context.Context, tx shared.DBTX, n *notice.Notice) error {
	tag, err := tx.Exec(ctx, updateNoticeSQL, n.ID(), n.Message().Value(), n.Type().String(), n.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update notice", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notice not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, tx shared.DBTX, id uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, deleteNoticeSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete notice", err)
	}
	return tag.RowsAffected() > 0, nil
}
