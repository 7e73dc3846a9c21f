package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDateOnWrongWeekday = errors.New("date does not fall on the slot's weekday")
	ErrDateInPast         = errors.New("date is in the past")
	ErrNotOwner           = errors.New("booking belongs to another user")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrCancelWindowClosed = errors.New("cancellation window has passed")
)

// Booking ties a user to one occurrence of a schedule slot on a concrete
// date. Cancelled bookings are kept for history; only the status changes.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	classID   uuid.UUID
	slotID    uuid.UUID
	date      Date
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructBooking(id, userID, classID, slotID uuid.UUID, date Date, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		classID:   classID,
		slotID:    slotID,
		date:      date,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) ClassID() uuid.UUID   { return b.classID }
func (b *Booking) SlotID() uuid.UUID    { return b.slotID }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

// EnsureCancellable checks ownership, status and the cutoff rule: a booking
// may be cancelled until cutoff before the slot starts on the booked date.
// A second cancel attempt is an error, not a no-op, so client bugs surface.
func (b *Booking) EnsureCancellable(requesterID uuid.UUID, slotStart time.Time, now time.Time, cutoff time.Duration) error {
	if b.userID != requesterID {
		return ErrNotOwner
	}
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !now.Before(slotStart.Add(-cutoff)) {
		return ErrCancelWindowClosed
	}
	return nil
}
