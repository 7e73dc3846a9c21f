package commands

import (
	"context"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/domain/gymclass"
	"github.com/manojshendge/gym-class-booking/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner starts ledger transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// CatalogRepository loads catalog entities for validation. Writes to the
// catalog are an administrative concern outside this module.
type CatalogRepository interface {
	FindClassByID(ctx context.Context, id uuid.UUID) (*gymclass.GymClass, error)
	FindSlotByID(ctx context.Context, id uuid.UUID) (*gymclass.ScheduleSlot, error)
}

// BookingRepository is the write side of the reservation ledger, the only
// component allowed to mutate booking rows.
type BookingRepository interface {
	// AcquireSlotDateLock serializes the check-then-insert sequence for one
	// (slot, date) pair within tx. Different pairs proceed in parallel.
	AcquireSlotDateLock(ctx context.Context, tx repository.DBTX, slotID uuid.UUID, date booking.Date) error
	CountConfirmed(ctx context.Context, db repository.DBTX, slotID uuid.UUID, date booking.Date) (int, error)
	HasConfirmed(ctx context.Context, db repository.DBTX, userID, slotID uuid.UUID, date booking.Date) (bool, error)
	Insert(ctx context.Context, tx repository.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx repository.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx repository.DBTX, id uuid.UUID, status booking.Status, updatedAt time.Time) error
}

// ContactRepository stores contact-form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, db repository.DBTX, name, email, phone, goal string) (uuid.UUID, error)
}

// NewsletterRepository stores newsletter signups. Delivery happens
// elsewhere; this module only records the address.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, db repository.DBTX, email string) (uuid.UUID, error)
}

type ContactSubmission struct {
	Name  string
	Email string
	Phone string
	Goal  string
}
