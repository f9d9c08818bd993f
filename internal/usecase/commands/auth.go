package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"gas-booking/internal/domain/auth"
	"gas-booking/internal/domain/user"
	"gas-booking/internal/infra"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/pkg/errs"
	"gas-booking/internal/pkg/jwt"
	"gas-booking/internal/pkg/password"
	"gas-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type RegisterRequest struct {
	Email                string
	Password             string
	PasswordConfirmation string
	DisplayName          string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
	audit      auditor
	hashCost   int
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock, sink shared.EventSink) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
		audit:      auditor{sink: sink, clock: clk},
		hashCost:   password.DefaultCost,
	}
}

// NewAuthCommandsWithCost lets tests trade hash strength for speed.
func NewAuthCommandsWithCost(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock, sink shared.EventSink, cost int) AuthCommands {
	a := NewAuthCommands(uow, jwtService, clk, sink).(*authCommandsImpl)
	a.hashCost = cost
	return a
}

// Register always creates a plain user; admins are provisioned out of band.
func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (_ uuid.UUID, err error) {
	defer func() { a.audit.fail(ctx, "register", err) }()

	reg, err := auth.NewRegistration(req.Email, req.Password, req.PasswordConfirmation, req.DisplayName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	hash, err := password.HashPasswordWithCost(reg.Password().Value(), a.hashCost)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	now := a.clock.Now()
	u := user.NewUser(reg.Email(), hash, reg.DisplayName(), user.RoleUser, now)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrEmailTaken)
		}
		return uuid.Nil, err
	}

	a.audit.emit(ctx, EventUserRegistered, now, map[string]any{
		"userId": u.ID().String(),
	})
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (_ *LoginResult, err error) {
	defer func() { a.audit.fail(ctx, "login", err) }()

	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issueTokens(snap.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    snap.ID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

// RefreshToken re-reads role and active flag so revocations apply from the next refresh.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (_ *TokenPair, err error) {
	defer func() { a.audit.fail(ctx, "refreshToken", err) }()

	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issueTokens(snap.ID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	if err = password.ComparePassword(snap.PasswordHash, credentials.Password().Value()); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return snap, nil
}
