//go:build unit || e2e

package builder

import (
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/user"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	PasswordHash string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "member@example.com",
		DisplayName:  "Test Member",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildDomain() *user.User {
	return user.ReconstructUser(u.ID, u.Email, u.DisplayName, u.PasswordHash, u.IsActive, time.Now())
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsActive:    u.IsActive,
	}
}
