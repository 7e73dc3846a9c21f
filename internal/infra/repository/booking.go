package repository

import (
	"context"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// AcquireSlotDateLock takes a transaction-scoped advisory lock keyed on the
// (slot, date) pair. hashtext gives a stable int4 per key, and the two-arg
// lock form keeps slot and date in separate key spaces, so only bookings
// for the same occurrence contend.
func (r *BookingRepository) AcquireSlotDateLock(ctx context.Context, tx DBTX, slotID uuid.UUID, date booking.Date) error {
	_, err := tx.Exec(ctx,
		"SELECT pg_advisory_xact_lock(hashtext($1::text), hashtext($2::text))",
		slotID.String(), date.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to acquire slot-date lock", err)
	}
	return nil
}

func (r *BookingRepository) CountConfirmed(ctx context.Context, db DBTX, slotID uuid.UUID, date booking.Date) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE schedule_slot_id = $1 AND booking_date = $2::date AND status = 'confirmed'
	`
	var count int
	if err := db.QueryRow(ctx, query, slotID, date.String()).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) HasConfirmed(ctx context.Context, db DBTX, userID, slotID uuid.UUID, date booking.Date) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND schedule_slot_id = $2 AND booking_date = $3::date AND status = 'confirmed'
		)
	`
	var exists bool
	if err := db.QueryRow(ctx, query, userID, slotID, date.String()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check existing booking", err)
	}
	return exists, nil
}

func (r *BookingRepository) Insert(ctx context.Context, tx DBTX, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, class_id, schedule_slot_id, booking_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8)
	`
	_, err := tx.Exec(ctx, query,
		b.ID(), b.UserID(), b.ClassID(), b.SlotID(), b.Date().String(), b.Status().String(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx DBTX, id uuid.UUID) (*booking.Booking, error) {
	query := `
		SELECT id, user_id, class_id, schedule_slot_id, booking_date, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`
	var (
		bookingID, userID, classID, slotID uuid.UUID
		bookingDate                        time.Time
		status                             string
		createdAt, updatedAt               time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&bookingID, &userID, &classID, &slotID, &bookingDate, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking for update", err)
	}

	return booking.ReconstructBooking(
		bookingID, userID, classID, slotID,
		booking.DateOf(bookingDate),
		booking.Status(status),
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx DBTX, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = $3
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query, id, status.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
