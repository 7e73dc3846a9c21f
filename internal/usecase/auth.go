package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/user"
	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/pkg/jwt"
	"github.com/manojshendge/gym-class-booking/internal/pkg/password"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReadStore loads members for authentication.
type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error)
}

type LoginResult struct {
	AccessToken string
	TokenTTL    time.Duration
	User        *queries.UserView
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*queries.UserView, error)
}

type authUseCaseImpl struct {
	users UserReadStore
	jwt   *jwt.Service
}

func NewAuthUseCase(users UserReadStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users: users,
		jwt:   jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	normalized, err := user.ValidateEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	member, err := a.users.FindByEmail(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := member.EnsureActive(); err != nil {
		return nil, err
	}

	if err := password.ComparePassword(member.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(member.ID(), member.Email())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	return &LoginResult{
		AccessToken: token,
		TokenTTL:    a.jwt.TokenDuration(),
		User: &queries.UserView{
			ID:          member.ID(),
			Email:       member.Email(),
			DisplayName: member.DisplayName(),
			IsActive:    member.IsActive(),
		},
	}, nil
}

func (a *authUseCaseImpl) Me(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	view, err := a.users.FindViewByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
