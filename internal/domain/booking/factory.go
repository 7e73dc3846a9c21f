package booking

import (
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/gymclass"
	"github.com/manojshendge/gym-class-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory builds new bookings, owning the date-level validation that needs
// a clock and the gym's timezone.
type Factory struct {
	Clock    clock.Clock
	Location *time.Location
}

func NewFactory(clock clock.Clock, loc *time.Location) *Factory {
	return &Factory{
		Clock:    clock,
		Location: loc,
	}
}

// CreateBooking validates the request against the slot's recurrence and the
// current time, then returns a confirmed booking ready to persist.
func (f *Factory) CreateBooking(userID uuid.UUID, slot *gymclass.ScheduleSlot, date Date) (*Booking, error) {
	if date.Weekday() != slot.Weekday() {
		return nil, ErrDateOnWrongWeekday
	}

	today := DateOf(f.Clock.Now().In(f.Location))
	if date.Before(today) {
		return nil, ErrDateInPast
	}

	now := f.Clock.Now()
	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		classID:   slot.ClassID(),
		slotID:    slot.ID(),
		date:      date,
		status:    StatusConfirmed,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// SlotStartOn is the concrete instant the slot begins on the given date.
func (f *Factory) SlotStartOn(slot *gymclass.ScheduleSlot, date Date) time.Time {
	return date.At(slot.Start(), f.Location)
}
