package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInactiveUser = errors.New("user is inactive")
)

// User is a gym member who can authenticate and book classes.
type User struct {
	id           uuid.UUID
	email        string
	displayName  string
	passwordHash string
	isActive     bool
	createdAt    time.Time
}

func ReconstructUser(id uuid.UUID, email, displayName, passwordHash string, isActive bool, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		displayName:  displayName,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func ValidateEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) EnsureActive() error {
	if !u.isActive {
		return ErrInactiveUser
	}
	return nil
}
