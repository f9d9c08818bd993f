package commands

//go:generate mockgen -source=notice.go -destination=../../../tests/mock/commands/notice.go -package=commandsmock

import (
	"context"

	"gas-booking/internal/domain/notice"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateNoticeRequest struct {
	Message string
	Type    string
}

// UpdateNoticeRequest leaves nil fields unchanged.
type UpdateNoticeRequest struct {
	Message *string
	Type    *string
}

type NoticeCommands interface {
	CreateNotice(ctx context.Context, adminID uuid.UUID, req CreateNoticeRequest) (uuid.UUID, error)
	UpdateNotice(ctx context.Context, adminID uuid.UUID, noticeID uuid.UUID, req UpdateNoticeRequest) error
	DeleteNotice(ctx context.Context, adminID uuid.UUID, noticeID uuid.UUID) error
}

type noticeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	audit auditor
}

// Admin access is enforced by the router; notices carry no per-row ownership.
func NewNoticeCommands(uow shared.UnitOfWork, clk clock.Clock, sink shared.EventSink) NoticeCommands {
	return &noticeCommandsImpl{uow: uow, clock: clk, audit: auditor{sink: sink, clock: clk}}
}

func (uc *noticeCommandsImpl) CreateNotice(ctx context.Context, adminID uuid.UUID, req CreateNoticeRequest) (_ uuid.UUID, err error) {
	defer func() { uc.audit.fail(ctx, "addNotice", err) }()

	msg, err := notice.NewMessage(req.Message)
	if err != nil {
		return uuid.Nil, translateDomainErr(err, nil)
	}
	typ, err := notice.ParseType(req.Type)
	if err != nil {
		return uuid.Nil, translateDomainErr(err, nil)
	}

	now := uc.clock.Now()
	n := notice.NewNotice(msg, typ, adminID, now)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notices().Create(ctx, tx.DB(), n)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.audit.emit(ctx, EventNoticeAdded, now, map[string]any{
		"noticeId": n.ID().String(),
		"type":     typ.String(),
		"adminUid": adminID.String(),
	})
	return n.ID(), nil
}

func (uc *noticeCommandsImpl) UpdateNotice(ctx context.Context, adminID uuid.UUID, noticeID uuid.UUID, req UpdateNoticeRequest) (err error) {
	defer func() { uc.audit.fail(ctx, "updateNotice", err) }()

	var (
		msg *notice.Message
		typ *notice.Type
	)
	if req.Message != nil {
		m, merr := notice.NewMessage(*req.Message)
		if merr != nil {
			return translateDomainErr(merr, nil)
		}
		msg = &m
	}
	if req.Type != nil {
		t, perr := notice.ParseType(*req.Type)
		if perr != nil {
			return translateDomainErr(perr, nil)
		}
		typ = &t
	}
	if msg == nil && typ == nil {
		return translateDomainErr(notice.ErrEmptyUpdate, nil)
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, terr := tx.Notices().FindByIDForUpdate(ctx, tx.DB(), noticeID)
		if terr != nil {
			return terr
		}
		if terr = n.Apply(msg, typ, now); terr != nil {
			return terr
		}
		return tx.Notices().Update(ctx, tx.DB(), n)
	})
	if err != nil {
		return translateDomainErr(err, ErrNoticeNotFound)
	}

	uc.audit.emit(ctx, EventNoticeUpdated, now, map[string]any{
		"noticeId": noticeID.String(),
		"adminUid": adminID.String(),
	})
	return nil
}

func (uc *noticeCommandsImpl) DeleteNotice(ctx context.Context, adminID uuid.UUID, noticeID uuid.UUID) (err error) {
	defer func() { uc.audit.fail(ctx, "deleteNotice", err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, terr := tx.Notices().Delete(ctx, tx.DB(), noticeID)
		if terr != nil {
			return terr
		}
		if !deleted {
			return ErrNoticeNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.audit.emit(ctx, EventNoticeDeleted, uc.clock.Now(), map[string]any{
		"noticeId": noticeID.String(),
		"adminUid": adminID.String(),
	})
	return nil
}
