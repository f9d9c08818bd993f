//go:build unit || e2e

package builder

import (
	"time"

	"gas-booking/internal/domain/payment"
	reqdto "gas-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Method      string
	Status      payment.Status
	CreatedAt   time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		UserID:      uuid.New(),
		AmountCents: 110000,
		Method:      "upi",
		Status:      payment.StatusRecorded,
		CreatedAt:   fixedNow,
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) Refunded() *PaymentBuilder {
	p.Status = payment.StatusRefunded
	return p
}

func (p *PaymentBuilder) BuildDomain() *payment.Payment {
	amount, err := payment.NewAmount(p.AmountCents)
	if err != nil {
		panic(err)
	}
	method, err := payment.NewMethod(p.Method)
	if err != nil {
		panic(err)
	}
	return payment.ReconstructPayment(p.ID, p.BookingID, p.UserID, amount, method, p.Status, p.CreatedAt, nil, nil)
}

func (p *PaymentBuilder) BuildRecordRequestDTO() reqdto.RecordPaymentRequest {
	return reqdto.RecordPaymentRequest{
		AmountCents: p.AmountCents,
		Method:      p.Method,
	}
}
