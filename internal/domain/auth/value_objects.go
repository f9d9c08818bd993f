package auth

import (
	"errors"

	"gas-booking/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a sign-up request that has passed field validation.
type Registration struct {
	Credentials
	displayName user.DisplayName
}

func NewRegistration(emailStr, passwordStr, confirmation, displayNameStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	if passwordStr != confirmation {
		return Registration{}, ErrPasswordMismatch
	}
	name, err := user.NewDisplayName(displayNameStr)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Credentials: creds, displayName: name}, nil
}

func (r Registration) DisplayName() user.DisplayName {
	return r.displayName
}
