package booking

import "errors"

var (
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrQuotaExceeded       = errors.New("annual cylinder quota exceeded")
	ErrInvalidTransition   = errors.New("booking status transition not allowed")
	ErrCancelWindowExpired = errors.New("cancellation window has expired")
	ErrNotOwner            = errors.New("booking belongs to another user")
	ErrNotPayable          = errors.New("booking must be approved before payment")
)

type Quantity struct {
	value int
}

func NewQuantity(n int) (Quantity, error) {
	if n < 1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: n}, nil
}

func (q Quantity) Value() int { return q.value }
