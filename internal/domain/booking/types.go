package booking

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// CountsTowardQuota reports whether a booking in this status consumes quota.
func (s Status) CountsTowardQuota() bool {
	return s == StatusPending || s == StatusApproved
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

func (p PaymentStatus) String() string { return string(p) }

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid:
		return PaymentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// QuotaStatuses lists the statuses summed by the annual quota check.
var QuotaStatuses = []Status{StatusPending, StatusApproved}
