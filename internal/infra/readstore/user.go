package readstore

import (
	"context"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/user"
	"github.com/manojshendge/gym-class-booking/internal/infra"
	"github.com/manojshendge/gym-class-booking/internal/infra/repository"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db repository.DBTX
}

func NewUserReadStore(db repository.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, display_name, password_hash, is_active, created_at
		FROM users
		WHERE email = $1
	`
	var (
		id                                  uuid.UUID
		rowEmail, displayName, passwordHash string
		isActive                            bool
		createdAt                           time.Time
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&id, &rowEmail, &displayName, &passwordHash, &isActive, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return user.ReconstructUser(id, rowEmail, displayName, passwordHash, isActive, createdAt), nil
}

func (r *UserReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	query := `
		SELECT id, email, display_name, is_active
		FROM users
		WHERE id = $1
	`
	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.DisplayName, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}
