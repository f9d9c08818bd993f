package payment

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidMethod   = errors.New("payment method must be 1-50 characters")
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrAlreadyRefunded = errors.New("payment already refunded")
)

const maxMethodLength = 50

// Amount is expressed in minor currency units.
type Amount struct {
	cents int64
}

func NewAmount(cents int64) (Amount, error) {
	if cents <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{cents: cents}, nil
}

func (a Amount) Cents() int64 { return a.cents }

type Method struct {
	value string
}

func NewMethod(s string) (Method, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxMethodLength {
		return Method{}, ErrInvalidMethod
	}
	return Method{value: s}, nil
}

func (m Method) Value() string { return m.value }
