package repository

import (
	"context"

	"github.com/manojshendge/gym-class-booking/internal/infra"

	"github.com/google/uuid"
)

type ContactRepository struct{}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Insert(ctx context.Context, db DBTX, name, email, phone, goal string) (uuid.UUID, error) {
	query := `
		INSERT INTO contacts (id, name, email, phone, goal)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id
	`
	var id uuid.UUID
	if err := db.QueryRow(ctx, query, name, email, phone, goal).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert contact", err)
	}
	return id, nil
}

type NewsletterRepository struct{}

func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{}
}

func (r *NewsletterRepository) Subscribe(ctx context.Context, db DBTX, email string) (uuid.UUID, error) {
	query := `
		INSERT INTO newsletter_subscriptions (id, email)
		VALUES (gen_random_uuid(), $1)
		RETURNING id
	`
	var id uuid.UUID
	if err := db.QueryRow(ctx, query, email).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert subscription", err)
	}
	return id, nil
}
